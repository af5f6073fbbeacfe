// Package requestid provides the process-wide request correlation id merged
// into outgoing headers as X-Request-Id.
package requestid

import (
	"sync"

	"github.com/google/uuid"
)

// Source yields a stable identifier used to correlate requests, or "" to
// send none.
type Source interface {
	RequestID() string
}

var (
	once sync.Once
	id   string
)

// Default returns the process-wide source. The id is generated on first use
// and stays stable for the process lifetime.
func Default() Source {
	return defaultSource{}
}

type defaultSource struct{}

func (defaultSource) RequestID() string {
	once.Do(func() {
		id = uuid.NewString()
	})
	return id
}

// Static returns a source that always yields the given id.
func Static(value string) Source {
	return staticSource(value)
}

type staticSource string

func (s staticSource) RequestID() string {
	return string(s)
}
