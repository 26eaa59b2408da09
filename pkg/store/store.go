// Package store provides the string-keyed stores a selection is persisted to.
package store

import (
	"context"
	"errors"
)

// Store is a synchronous string key-value store with no expiry.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set overwrites the value for key.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	// Keys returns the stored keys in ascending order.
	Keys(ctx context.Context) []string
}

// ErrEmptyKey is returned when a store operation is given an empty key.
var ErrEmptyKey = errors.New("store: key required")
