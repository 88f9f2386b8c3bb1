package controller

import (
	"errors"
	"fmt"
)

// ErrInstanceActive is returned when StartInstance is called while the
// controller already owns an instance. This is a caller bug, not a remote
// failure; no launch call is issued.
var ErrInstanceActive = errors.New("controller already owns an instance")

// SubstantiationError indicates a start attempt that resolved to a definitive
// failure: the spot bid exceeded the ceiling, the spot request was rejected,
// or the instance reached a terminal state without ever running. It carries
// whatever identifiers are known so the caller can investigate.
type SubstantiationError struct {
	InstanceID string
	RequestID  string
	Detail     string
}

func (e SubstantiationError) Error() string {
	msg := "failed to substantiate worker"
	if e.RequestID != "" {
		msg = fmt.Sprintf("%s (spot request %s)", msg, e.RequestID)
	}
	if e.InstanceID != "" {
		msg = fmt.Sprintf("%s (instance %s)", msg, e.InstanceID)
	}
	return fmt.Sprintf("%s: %s", msg, e.Detail)
}
