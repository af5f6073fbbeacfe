package adapter

import (
	"net/http"
	"time"
)

type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	SkipVerify      bool
	ForceHTTP1      bool
	Transport       http.RoundTripper
}
