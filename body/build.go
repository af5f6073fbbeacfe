// Package body encodes request bodies into wire payloads. It is the Body
// collaborator consumed by request.Request: JSON by default, form-urlencoded
// when the request declares it, multipart as soon as the body carries a file.
package body

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulandj/evil-client/request"
)

const formURLEncoded = "application/x-www-form-urlencoded"

// Builder implements request.BodyBuilder.
type Builder struct{}

// BuildBody encodes the request body. An empty body yields the zero Payload.
func (Builder) BuildBody(req request.Request) (request.Payload, error) {
	if len(req.Body()) == 0 {
		return request.Payload{}, nil
	}
	switch {
	case req.IsMultipart():
		return buildMultipartBody(req)
	case declaresFormContentType(req):
		return buildFormBody(req)
	default:
		return buildJSONBody(req)
	}
}

func buildJSONBody(req request.Request) (request.Payload, error) {
	// request.Map marshals its keys in insertion order.
	encoded, err := req.Body().MarshalJSON()
	if err != nil {
		return request.Payload{}, errors.Wrap(err, "marshaling JSON of request body")
	}
	return request.Payload{
		Content:       io.NopCloser(bytes.NewReader(encoded)),
		ContentLength: int64(len(encoded)),
		ContentType:   "application/json",
	}, nil
}

// buildFormBody encodes the flattened body by hand because url.Values.Encode
// sorts keys, and field order must match FlatBody.
func buildFormBody(req request.Request) (request.Payload, error) {
	var encoded strings.Builder
	for i, field := range req.FlatBody() {
		if i > 0 {
			encoded.WriteByte('&')
		}
		encoded.WriteString(url.QueryEscape(field.Key))
		encoded.WriteByte('=')
		encoded.WriteString(url.QueryEscape(fmt.Sprint(field.Value)))
	}
	content := encoded.String()
	return request.Payload{
		Content:       io.NopCloser(strings.NewReader(content)),
		ContentLength: int64(len(content)),
		ContentType:   formURLEncoded + "; charset=utf-8",
	}, nil
}

func buildMultipartBody(req request.Request) (request.Payload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range req.FlatBody() {
		if field.IsFile {
			file := field.Value.(request.File)
			part, err := writer.CreateFormFile(field.Key, filepath.Base(file.Path()))
			if err != nil {
				return request.Payload{}, errors.Wrapf(err, "creating form file '%s'", field.Key)
			}
			if _, err := io.Copy(part, file); err != nil {
				return request.Payload{}, errors.Wrapf(err, "reading file of '%s'", field.Key)
			}
		} else {
			if err := writer.WriteField(field.Key, fmt.Sprint(field.Value)); err != nil {
				return request.Payload{}, errors.Wrapf(err, "writing form field '%s'", field.Key)
			}
		}
	}
	if err := writer.Close(); err != nil {
		return request.Payload{}, errors.Wrap(err, "finishing multipart body")
	}
	return request.Payload{
		Content:       io.NopCloser(bytes.NewReader(buf.Bytes())),
		ContentLength: int64(buf.Len()),
		ContentType:   writer.FormDataContentType(),
	}, nil
}

func declaresFormContentType(req request.Request) bool {
	for _, field := range req.Headers() {
		if strings.EqualFold(field.Name, "Content-Type") &&
			strings.HasPrefix(field.Value, formURLEncoded) {
			return true
		}
	}
	return false
}
