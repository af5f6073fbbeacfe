// Package adapter executes rendered request tuples against net/http.
package adapter

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulandj/evil-client/request"
	"github.com/ulandj/evil-client/version"
)

// Send performs the rendered tuple against the transport described by
// options and returns the raw response.
func Send(tuple request.Tuple, options *Options) (*http.Response, error) {
	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}
	r, err := BuildHTTPRequest(tuple)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "sending HTTP request")
	}

	return resp, nil
}

// BuildHTTPRequest converts a rendered tuple into an *http.Request. The wire
// method is the upper-cased tuple method; Content-Type is backfilled from the
// body payload when the headers did not declare one.
func BuildHTTPRequest(tuple request.Tuple) (*http.Request, error) {
	u, err := buildURL(tuple)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	for name, values := range tuple.Headers {
		for _, value := range values {
			header.Add(name, value)
		}
	}
	if header.Get("Content-Type") == "" && tuple.Body.ContentType != "" {
		header.Set("Content-Type", tuple.Body.ContentType)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", version.UserAgent())
	}

	r := http.Request{
		Method:        strings.ToUpper(tuple.Method),
		URL:           u,
		Header:        header,
		Host:          header.Get("Host"),
		Body:          tuple.Body.Content,
		ContentLength: tuple.Body.ContentLength,
	}
	return &r, nil
}

// buildURL appends the query fields to the tuple path. Fields are encoded by
// hand because url.Values.Encode sorts keys and the tuple order is the
// declaration order.
func buildURL(tuple request.Tuple) (*url.URL, error) {
	u, err := url.Parse(tuple.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing request path '%s'", tuple.Path)
	}

	if len(tuple.Query) > 0 {
		var rawQuery strings.Builder
		rawQuery.WriteString(u.RawQuery)
		for _, field := range tuple.Query {
			if rawQuery.Len() > 0 {
				rawQuery.WriteByte('&')
			}
			rawQuery.WriteString(url.QueryEscape(field.Name))
			rawQuery.WriteByte('=')
			rawQuery.WriteString(url.QueryEscape(field.Value))
		}
		u.RawQuery = rawQuery.String()
	}

	return u, nil
}
