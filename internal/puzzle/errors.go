package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClassName means a part's type name is not Day<day>Part<part>.
	ErrInvalidClassName = errors.New("invalid class name")

	// ErrInvalidYearFolder means the declaring directory is not y<year>.
	ErrInvalidYearFolder = errors.New("invalid year folder")

	// ErrParsedType means Solve received a value of the wrong type.
	ErrParsedType = errors.New("parsed data has unexpected type")
)

// IdentityError is a configuration error raised while deriving an Identity.
// The exercise cannot run at all; it is never recovered internally.
type IdentityError struct {
	// Kind is ErrInvalidClassName or ErrInvalidYearFolder.
	Kind error

	// Value is the offending type or folder name.
	Value string

	// Reason adds detail when the shape matched but the value is out of range.
	Reason string
}

func (e *IdentityError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v %q: %s", e.Kind, e.Value, e.Reason)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Value)
}

func (e *IdentityError) Unwrap() error {
	return e.Kind
}
