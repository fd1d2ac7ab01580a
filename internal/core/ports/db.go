package ports

// KVStore is the key/value slot storage every persisted model goes through.
// Values are opaque (JSON encoded by callers). Get returns a nil value and no
// error when the key is not set.
type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
