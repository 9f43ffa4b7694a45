package generator

import (
	"errors"
	"fmt"
)

// NoAcceptableSampleError is returned when a row exhausts its attempt
// budget without an accepted curve.
type NoAcceptableSampleError struct {
	Row      int // Row index that gave up
	Attempts int // Attempts made, equal to the budget
}

func (e *NoAcceptableSampleError) Error() string {
	return fmt.Sprintf("no acceptable sample found for row %d after %d attempts", e.Row, e.Attempts)
}

// IsNoSampleError returns true if err is or wraps a NoAcceptableSampleError.
func IsNoSampleError(err error) bool {
	var ne *NoAcceptableSampleError
	return errors.As(err, &ne)
}
