package matrix

import (
	"errors"
	"fmt"
)

// Domain errors for matrix construction and access.
var (
	// ErrOutOfRange indicates a row or column outside [0, N).
	// It is only ever seen wrapped in the *IndexError carried by a panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShape indicates row data that does not form an N×N grid.
	ErrShape = errors.New("matrix: rows do not match matrix order")
)

// IndexError is the panic value raised by At and Set on a bad index.
type IndexError struct {
	Row, Col int
	Order    int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: index (%d, %d) out of range for order %d", e.Row, e.Col, e.Order)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
