// Package request implements an immutable HTTP request description.
//
// A Request accumulates path, method type, headers, query and body through
// With* transformations. Every transformation returns a new Request and
// leaves the receiver untouched, so a base request can be shared and
// specialized by many call sites without coordination. A finished Request is
// rendered into a Tuple, the ordered argument list a transport adapter needs
// to perform the call.
package request

import (
	"io"
	"net/http"
	"strings"
)

// Field is a single named value of an ordered header or query mapping.
type Field struct {
	Name  string
	Value string
}

// Wire method types. Any other verb is tunneled through POST with a _method
// body field (see WithType).
const (
	MethodGet  = "get"
	MethodPost = "post"
)

const methodOverrideKey = "_method"

// Request is an immutable request description. Construct one with New.
type Request struct {
	path    string
	method  string
	headers []Field
	query   []Field
	body    Map
}

// New returns a Request rooted at baseURL with trailing slashes stripped.
// All other dimensions start empty.
func New(baseURL string) Request {
	return Request{path: strings.TrimRight(baseURL, "/")}
}

// Path returns the normalized request path.
func (r Request) Path() string {
	return r.path
}

// Method returns "get" or "post". A request that never saw WithType is a GET.
func (r Request) Method() string {
	if r.method == "" {
		return MethodGet
	}
	return r.method
}

// Headers returns a copy of the declared header fields in insertion order.
func (r Request) Headers() []Field {
	return cloneFields(r.headers)
}

// Query returns a copy of the declared query fields in insertion order.
func (r Request) Query() []Field {
	return cloneFields(r.query)
}

// Body returns a copy of the body mapping in insertion order.
func (r Request) Body() Map {
	return clonePairs(r.body)
}

// WithPath appends path fragments to the request path. Each part is split on
// "/" and empty fragments are dropped, so "a", "b/c" and "a/b/c" produce the
// same path.
func (r Request) WithPath(parts ...string) Request {
	var segments []string
	for _, part := range parts {
		for _, segment := range strings.Split(part, "/") {
			if segment != "" {
				segments = append(segments, segment)
			}
		}
	}
	if len(segments) == 0 {
		return r
	}
	next := r
	next.path = r.path + "/" + strings.Join(segments, "/")
	return next
}

// WithHeaders overlays fields onto the declared headers. Existing names keep
// their position and take the new value; new names are appended in argument
// order.
func (r Request) WithHeaders(fields ...Field) Request {
	next := r
	next.headers = overlayFields(r.headers, fields)
	return next
}

// WithQuery overlays fields onto the query mapping, with the same merge
// semantics as WithHeaders.
func (r Request) WithQuery(fields ...Field) Request {
	next := r
	next.query = overlayFields(r.query, fields)
	return next
}

// WithBody overlays pairs onto the body mapping. The merge is shallow: a key
// that maps to a nested structure replaces the old value at that key
// wholesale.
func (r Request) WithBody(pairs ...Pair) Request {
	next := r
	next.body = overlayPairs(r.body, pairs)
	return next
}

// WithType sets the method type. GET requests carry no body, so "get" empties
// it. "post" is taken as-is, dropping any pending method override. Any other
// verb is sent as a POST carrying the verb in a _method body field, the usual
// override-via-POST tunneling.
func (r Request) WithType(method string) Request {
	next := r
	switch method {
	case MethodGet:
		next.method = MethodGet
		next.body = nil
	case MethodPost:
		next.method = MethodPost
		next.body = deletePair(r.body, methodOverrideKey)
	default:
		next.method = MethodPost
		next.body = overlayPairs(r.body, []Pair{{Key: methodOverrideKey, Value: method}})
	}
	return next
}

// Payload is an encoded request body produced by a BodyBuilder.
// The zero value means "no body".
type Payload struct {
	Content       io.ReadCloser
	ContentLength int64
	ContentType   string
}

// BodyBuilder encodes a request body. Implementations must iterate FlatBody
// in the order produced so multipart field order is reproducible.
type BodyBuilder interface {
	BuildBody(req Request) (Payload, error)
}

// HeadersBuilder renders the final header mapping for a request, including
// content-type negotiation and request correlation.
type HeadersBuilder interface {
	BuildHeaders(req Request) (http.Header, error)
}

// Params is the rendered (query, body, headers) triple.
type Params struct {
	Query   []Field
	Body    Payload
	Headers http.Header
}

// Tuple is the complete ordered argument list an adapter needs to perform
// the call.
type Tuple struct {
	Method  string
	Path    string
	Query   []Field
	Body    Payload
	Headers http.Header
}

// Params renders the request through the given collaborators.
func (r Request) Params(bodies BodyBuilder, headers HeadersBuilder) (Params, error) {
	payload, err := bodies.BuildBody(r)
	if err != nil {
		return Params{}, err
	}
	header, err := headers.BuildHeaders(r)
	if err != nil {
		return Params{}, err
	}
	return Params{Query: r.Query(), Body: payload, Headers: header}, nil
}

// Tuple renders the complete argument list for an adapter.
func (r Request) Tuple(bodies BodyBuilder, headers HeadersBuilder) (Tuple, error) {
	params, err := r.Params(bodies, headers)
	if err != nil {
		return Tuple{}, err
	}
	return Tuple{
		Method:  r.Method(),
		Path:    r.path,
		Query:   params.Query,
		Body:    params.Body,
		Headers: params.Headers,
	}, nil
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	cloned := make([]Field, len(fields))
	copy(cloned, fields)
	return cloned
}

func overlayFields(base, overlay []Field) []Field {
	merged := make([]Field, len(base), len(base)+len(overlay))
	copy(merged, base)
	for _, field := range overlay {
		replaced := false
		for i := range merged {
			if merged[i].Name == field.Name {
				merged[i].Value = field.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, field)
		}
	}
	return merged
}
