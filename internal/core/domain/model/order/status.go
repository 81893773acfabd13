package order

import (
	"fmt"

	"artisan/internal/pkg/errs"
)

// ErrStatusIsInvalid is returned for any status outside pending, ready, delivered.
var ErrStatusIsInvalid = errs.NewValueIsInvalidError("status")

// Status is the lifecycle state of an order.
//
//	Pending <──> Ready <──> Delivered
//
// Any status may be set from any other one; the workshop moves orders back when
// a piece needs rework. The zero value is Unknown and never validates, so a
// Status that did not come from a constant or from ParseStatus cannot be stored.
type Status int

const (
	Unknown Status = iota
	Pending
	Ready
	Delivered
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Ready:     "ready",
	Delivered: "delivered",
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Ready, Delivered}
}

// ParseStatus maps the wire representation onto a Status. Matching is exact:
// "Ready" and " ready" are rejected like any unknown value.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not one of pending, ready, delivered", ErrStatusIsInvalid, s)
}

// Validate returns ErrStatusIsInvalid for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrStatusIsInvalid, int(s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}
