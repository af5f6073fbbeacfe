package input

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulandj/evil-client/request"
)

// decodeJSONValue decodes a raw JSON item value. Objects become request.Map
// so key order survives; encoding/json's native map would lose it.
func decodeJSONValue(data string) (any, error) {
	decoder := json.NewDecoder(strings.NewReader(data))
	decoder.UseNumber()
	value, err := decodeValue(decoder)
	if err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.Errorf("trailing data after JSON value: %s", data)
	}
	return value, nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		object := request.Map{}
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			object = append(object, request.Pair{Key: keyToken.(string), Value: value})
		}
		// consume the closing '}'
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return object, nil
	case '[':
		sequence := []any{}
		for decoder.More() {
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			sequence = append(sequence, value)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return sequence, nil
	default:
		return nil, errors.Errorf("unexpected delimiter: %v", delim)
	}
}
