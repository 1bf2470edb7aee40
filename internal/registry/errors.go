package registry

import (
	"errors"
	"fmt"
)

// GroupNotFoundError is returned by read, remove and execute paths when the
// referenced group is absent from the store.
type GroupNotFoundError struct {
	Group string
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("group %q does not exist", e.Group)
}

// IsGroupNotFound reports whether err is or wraps a *GroupNotFoundError.
func IsGroupNotFound(err error) bool {
	var gnf *GroupNotFoundError
	return errors.As(err, &gnf)
}
