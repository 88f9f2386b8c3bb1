package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error accumulates failures from concurrently running controllers, one
// message per worker that could not be provisioned.
type Error struct {
	sync.Mutex
	failures []string
}

func (e *Error) Add(err error) {
	e.Lock()
	defer e.Unlock()

	e.failures = append(e.failures, err.Error())
}

// Error combines the collected failures, or returns nil when every worker
// provisioned cleanly.
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.failures) == 0 {
		return nil
	}

	return fmt.Errorf("could not provision all workers:\n%s", strings.Join(e.failures, "\n"))
}
