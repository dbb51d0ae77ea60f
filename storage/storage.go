package storage

import "errors"

// ErrKeyNotFound is returned by Get when no snapshot exists under a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a key-value snapshot store. Each key holds one whole serialized
// collection; every write replaces the previous snapshot for that key.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
