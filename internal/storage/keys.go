package storage

import "errors"

// Key identifies the key-value slot owned by a storage instance.
type Key string

const (
	// KeyNetworkCache holds the per-network properties fetched from nodes.
	KeyNetworkCache Key = "network"
	// KeyNodeSelection holds the url of the node picked by the user.
	KeyNodeSelection Key = "node"
)

var (
	// ErrNullKey is returned when creating a storage without a slot key.
	ErrNullKey = errors.New("storage key must not be empty")
	// ErrNullGenerationHash is returned when addressing a network-scoped
	// entry with an empty generation hash.
	ErrNullGenerationHash = errors.New("generation hash must not be empty")
	// ErrUnsupportedVersion is returned when the stored payload has been
	// written by a newer schema than the one known by the migrations list.
	ErrUnsupportedVersion = errors.New("stored version is newer than latest known")
	// ErrMalformedVersion is returned when the stored payload carries a
	// negative version.
	ErrMalformedVersion = errors.New("stored version must not be negative")
)
