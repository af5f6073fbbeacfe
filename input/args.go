// Package input turns httpie-style command line arguments into an immutable
// request description.
package input

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulandj/evil-client/request"
)

var (
	reMethod          = regexp.MustCompile(`^[a-zA-Z]+$`)
	reHeaderFieldName = regexp.MustCompile("^[-!#$%&'*+.^_|~a-zA-Z0-9]+$")
	reScheme          = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+-.]*://`)
)

type itemType int

const (
	unknownItem itemType = iota
	httpHeaderItem
	urlParameterItem
	dataFieldItem
	rawJSONFieldItem
	formFileFieldItem
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// ParseArgs parses "[METHOD] URL [REQUEST_ITEM ...]" into a request. Items:
//
//	name:value   header field
//	name==value  query field
//	name=value   body field
//	name:=json   body field with a raw JSON value
//	name@path    body field uploading the named file
//
// Without a METHOD argument the request stays a GET unless a body item was
// given, in which case it becomes a POST.
func ParseArgs(args []string) (request.Request, error) {
	var argMethod string
	var argURL string
	var argItems []string
	switch len(args) {
	case 0:
		return request.Request{}, newUsageError("URL is required")
	case 1:
		argURL = args[0]
	default:
		if reMethod.MatchString(args[0]) {
			argMethod = args[0]
			argURL = args[1]
			argItems = args[2:]
		} else {
			argURL = args[0]
			argItems = args[1:]
		}
	}

	req := request.New(normalizeURL(argURL))
	for _, item := range argItems {
		var err error
		req, err = parseItem(item, req)
		if err != nil {
			return request.Request{}, err
		}
	}

	switch {
	case argMethod != "":
		req = req.WithType(strings.ToLower(argMethod))
	case len(req.Body()) > 0:
		req = req.WithType(request.MethodPost)
	}

	return req, nil
}

// normalizeURL fills in the default scheme and host so that ":8080/hello",
// "/hello" and "example.com/hello" all work as base URLs.
func normalizeURL(s string) string {
	defaultScheme := "http"
	defaultHost := "localhost"

	// ex) :8080/hello or /hello
	if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "/") {
		s = defaultHost + s
	}

	// ex) example.com/hello
	if !reScheme.MatchString(s) {
		s = defaultScheme + "://" + s
	}

	return s
}

func parseItem(s string, req request.Request) (request.Request, error) {
	itemType, name, value := splitItem(s)
	switch itemType {
	case httpHeaderItem:
		if !reHeaderFieldName.MatchString(name) {
			return request.Request{}, errors.Errorf("invalid header field name: %s", name)
		}
		return req.WithHeaders(request.Field{Name: name, Value: value}), nil
	case urlParameterItem:
		return req.WithQuery(request.Field{Name: name, Value: value}), nil
	case dataFieldItem:
		return req.WithBody(request.Pair{Key: name, Value: value}), nil
	case rawJSONFieldItem:
		decoded, err := decodeJSONValue(value)
		if err != nil {
			return request.Request{}, errors.Wrapf(err, "invalid JSON at '%s'", name)
		}
		return req.WithBody(request.Pair{Key: name, Value: decoded}), nil
	case formFileFieldItem:
		file, err := request.Open(value)
		if err != nil {
			return request.Request{}, err
		}
		return req.WithBody(request.Pair{Key: name, Value: file}), nil
	default:
		return request.Request{}, errors.Errorf("unknown request item: %s", s)
	}
}

func splitItem(s string) (itemType, string, string) {
	for i, c := range s {
		switch c {
		case ':':
			if i+1 < len(s) && s[i+1] == '=' {
				return rawJSONFieldItem, s[:i], s[i+2:]
			}
			return httpHeaderItem, s[:i], s[i+1:]
		case '=':
			if i+1 < len(s) && s[i+1] == '=' {
				return urlParameterItem, s[:i], s[i+2:]
			}
			return dataFieldItem, s[:i], s[i+1:]
		case '@':
			return formFileFieldItem, s[:i], s[i+1:]
		}
	}
	return unknownItem, "", ""
}
