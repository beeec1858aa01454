package numerics

import (
	"errors"
	"fmt"
)

var (
	ErrNilDestination      = errors.New("numerics: nil destination")
	ErrIndexOutOfRange     = errors.New("numerics: index out of range")
	ErrDestinationTooShort = errors.New("numerics: destination too short")
)

// CopyTo writes X and Y into dst[0] and dst[1].
func (a Vector2) CopyTo(dst []float32) error { return a.CopyToAt(dst, 0) }

// CopyToAt writes X and Y into dst[index] and dst[index+1]. dst is left
// untouched when it cannot hold both components at index.
func (a Vector2) CopyToAt(dst []float32, index int) error {
	if dst == nil {
		return ErrNilDestination
	}
	if index < 0 || index >= len(dst) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(dst))
	}
	if len(dst)-index < 2 {
		return fmt.Errorf("%w: need 2 elements at index %d, length %d", ErrDestinationTooShort, index, len(dst))
	}
	dst[index] = a.X
	dst[index+1] = a.Y
	return nil
}
