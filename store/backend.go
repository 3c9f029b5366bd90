// Package store persists a portfolio: its properties, its renovations and the
// onboarding flag.
//
// A Store sits on top of a Backend, a flat key-value storage. Reading never
// fails: a missing entry is seeded, an unreadable one falls back to the seed,
// and the Outcome tells which happened. Writing never fails either, errors are
// logged and reported as the Failed outcome.
package store

import (
	"context"
	"errors"
)

// Keys of the three entries of a portfolio.
const (
	PropertiesKey  = "properties"
	RenovationsKey = "renovations"
	OnboardedKey   = "onboarded"
)

// Keys lists every entry, in the order Clear removes them.
var Keys = []string{PropertiesKey, RenovationsKey, OnboardedKey}

// ErrNotFound is returned by a Backend when a key has no value.
var ErrNotFound = errors.New("not found")

// Backend is a flat key-value storage.
//
// Backends do not need to synchronize concurrent writes to the same key: the
// last write wins, but a write must never leave a partial value behind.
type Backend interface {
	// Get returns the value for key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
