package indexedmap

import (
	"errors"
	"fmt"
)

// ErrUnsupported is the error a ReadOnlyIndexedMap panics with on mutation.
// It wraps errors.ErrUnsupported.
var ErrUnsupported = fmt.Errorf("indexedmap: read-only map: %w", errors.ErrUnsupported)

func unsupported(op string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, op)
}
