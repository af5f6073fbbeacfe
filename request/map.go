package request

import (
	"bytes"
	"encoding/json"
)

// Pair is a single entry of an ordered body mapping. Values may be scalars,
// nested Maps, []any sequences or File handles, to arbitrary depth.
type Pair struct {
	Key   string
	Value any
}

// Map is an insertion-ordered mapping used for request bodies. A nil Map is
// an empty mapping.
type Map []Pair

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, pair := range m {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion
// order. encoding/json would sort the keys of a native map.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func clonePairs(pairs Map) Map {
	if pairs == nil {
		return nil
	}
	cloned := make(Map, len(pairs))
	copy(cloned, pairs)
	return cloned
}

func overlayPairs(base Map, overlay []Pair) Map {
	merged := make(Map, len(base), len(base)+len(overlay))
	copy(merged, base)
	for _, pair := range overlay {
		replaced := false
		for i := range merged {
			if merged[i].Key == pair.Key {
				merged[i].Value = pair.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, pair)
		}
	}
	return merged
}

func deletePair(pairs Map, key string) Map {
	if pairs == nil {
		return nil
	}
	remaining := make(Map, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Key != key {
			remaining = append(remaining, pair)
		}
	}
	return remaining
}
