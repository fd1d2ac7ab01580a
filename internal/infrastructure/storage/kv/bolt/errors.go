package boltkv

import "fmt"

var (
	// ErrRootBucketNotFound specifies that there is no root bucket which
	// can/should happen only if the store has been corrupted or was initialized
	// incorrectly.
	ErrRootBucketNotFound = fmt.Errorf("root bucket not found")
	// ErrMissingKey specifies that a key is required to write a value.
	ErrMissingKey = fmt.Errorf("missing key")
)
