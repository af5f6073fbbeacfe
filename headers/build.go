// Package headers renders the final header mapping of a request. It is the
// Headers collaborator consumed by request.Request.
package headers

import (
	"net/http"

	"github.com/ulandj/evil-client/request"
	"github.com/ulandj/evil-client/requestid"
)

const requestIDHeader = "X-Request-Id"

// Builder implements request.HeadersBuilder. With a nil RequestID no
// correlation header is sent.
type Builder struct {
	RequestID requestid.Source
}

// BuildHeaders turns the declared header fields into an http.Header, merges
// the request correlation id and negotiates the content type. The multipart
// content type carries the encoder's boundary, so it is left for the adapter
// to backfill from the body payload.
func (b Builder) BuildHeaders(req request.Request) (http.Header, error) {
	header := make(http.Header)
	for _, field := range req.Headers() {
		header.Add(field.Name, field.Value)
	}

	if b.RequestID != nil && header.Get(requestIDHeader) == "" {
		if id := b.RequestID.RequestID(); id != "" {
			header.Set(requestIDHeader, id)
		}
	}

	if header.Get("Content-Type") == "" && len(req.Body()) > 0 && !req.IsMultipart() {
		header.Set("Content-Type", "application/json")
	}

	return header, nil
}
