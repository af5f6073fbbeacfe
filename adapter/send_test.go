package adapter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ulandj/evil-client/request"
)

func textPayload(content, contentType string) request.Payload {
	return request.Payload{
		Content:       io.NopCloser(strings.NewReader(content)),
		ContentLength: int64(len(content)),
		ContentType:   contentType,
	}
}

func TestBuildHTTPRequest(t *testing.T) {
	// Setup
	tuple := request.Tuple{
		Method: "post",
		Path:   "http://example.com/users",
		Query: []request.Field{
			{Name: "b", Value: "2"},
			{Name: "a", Value: "love & peace"},
		},
		Body:    textPayload(`{"x":1}`, "application/json"),
		Headers: http.Header{"X-Token": []string{"abc"}},
	}

	// Exercise
	r, err := BuildHTTPRequest(tuple)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if r.Method != "POST" {
		t.Errorf("unexpected method: %s", r.Method)
	}
	// Query fields keep their declaration order.
	if r.URL.String() != "http://example.com/users?b=2&a=love+%26+peace" {
		t.Errorf("unexpected URL: %s", r.URL.String())
	}
	if r.Header.Get("X-Token") != "abc" {
		t.Errorf("unexpected header: %s", r.Header.Get("X-Token"))
	}
	if r.Header.Get("Content-Type") != "application/json" {
		t.Errorf("content type not backfilled: %s", r.Header.Get("Content-Type"))
	}
	if r.Header.Get("User-Agent") == "" {
		t.Error("expected a default User-Agent")
	}
	if r.ContentLength != int64(len(`{"x":1}`)) {
		t.Errorf("unexpected content length: %d", r.ContentLength)
	}
}

func TestBuildHTTPRequest_DeclaredContentTypeWins(t *testing.T) {
	// Setup
	tuple := request.Tuple{
		Method:  "post",
		Path:    "http://example.com",
		Body:    textPayload("a=1", "application/x-www-form-urlencoded"),
		Headers: http.Header{"Content-Type": []string{"text/plain"}},
	}

	// Exercise
	r, err := BuildHTTPRequest(tuple)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if r.Header.Get("Content-Type") != "text/plain" {
		t.Errorf("unexpected content type: %s", r.Header.Get("Content-Type"))
	}
}

func TestBuildHTTPRequest_MergesExistingRawQuery(t *testing.T) {
	// Setup
	tuple := request.Tuple{
		Method: "get",
		Path:   "http://example.com/search?q=hello",
		Query:  []request.Field{{Name: "page", Value: "2"}},
	}

	// Exercise
	r, err := BuildHTTPRequest(tuple)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if r.URL.RawQuery != "q=hello&page=2" {
		t.Errorf("unexpected raw query: %s", r.URL.RawQuery)
	}
}

func TestSend(t *testing.T) {
	// Setup
	var gotMethod, gotPath, gotBody, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	tuple := request.Tuple{
		Method: "post",
		Path:   server.URL + "/users",
		Query:  []request.Field{{Name: "notify", Value: "1"}},
		Body:   textPayload(`{"name":"joe"}`, "application/json"),
	}

	// Exercise
	resp, err := Send(tuple, &Options{})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	defer resp.Body.Close()

	// Verify
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if gotMethod != "POST" {
		t.Errorf("unexpected method: %s", gotMethod)
	}
	if gotPath != "/users?notify=1" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotBody != `{"name":"joe"}` {
		t.Errorf("unexpected body: %s", gotBody)
	}
	if gotContentType != "application/json" {
		t.Errorf("unexpected content type: %s", gotContentType)
	}
}

func TestSend_DoesNotFollowRedirectsByDefault(t *testing.T) {
	// Setup
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	// Exercise
	resp, err := Send(request.Tuple{Method: "get", Path: server.URL}, &Options{})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	defer resp.Body.Close()

	// Verify
	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected the redirect response itself, got %d", resp.StatusCode)
	}
}
