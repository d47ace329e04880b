// Package store provides the durable key-value capability chip persists
// its state through. Backends hold string values under string keys and
// support batched reads and writes.
package store

import (
	"context"
	"os"
	"path/filepath"
)

// Store is the key-value capability consumed by the persistence layer.
// All operations may fail; failures surface as errors, never panics.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes one key.
	Set(ctx context.Context, key, value string) error
	// MultiGet reads several keys in one call. Absent keys are simply
	// missing from the result map.
	MultiGet(ctx context.Context, keys []string) (map[string]string, error)
	// MultiSet writes several keys in one call. Each key is written
	// independently: a failure partway through leaves previously
	// written keys intact.
	MultiSet(ctx context.Context, pairs map[string]string) error
	// Close releases backend resources.
	Close() error
}

// DefaultDBPath returns the XDG-compliant location of the chip database.
func DefaultDBPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "chip", "chip.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "chip", "chip.db")
}
