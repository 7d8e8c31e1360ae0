package roster

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("no competitors given")
	ErrTooFew       = errors.New("at least two competitors are required")
	ErrEmptyName    = errors.New("competitor name must not be empty")
	ErrDuplicate    = errors.New("competitor listed more than once")
	ErrByeCollision = errors.New("competitor name collides with the bye label")
	ErrEmptyBye     = errors.New("bye label must not be empty")
	ErrLineBreak    = errors.New("name must fit on a single line")
)

// InvalidInputError is returned when a competitor list cannot form a
// roster. Err holds every problem found, joined.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid competitor list: %v", e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
