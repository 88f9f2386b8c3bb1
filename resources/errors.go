package resources

import "fmt"

// NotFoundError indicates the control plane does not (yet) know about a
// resource. EC2 is eventually consistent, so a freshly created resource may
// legitimately be invisible to a describe call for a while; pollers treat
// this as "still pending" rather than fatal.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
