// Package storage defines the pluggable recipe store contract and its three
// engines: in-memory, one-file-per-record JSON, and a relational single
// table over sqlite.
package storage

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/platewise/recipe-service/config"
	"github.com/platewise/recipe-service/internal/model"
)

var (
	// ErrNotFound reports an absent key on read, update or delete.
	ErrNotFound = errors.New("recipe not found")
	// ErrAlreadyExists reports a key collision on create.
	ErrAlreadyExists = errors.New("recipe already exists")
)

// Record pairs a stored recipe with its key.
type Record struct {
	Key    string
	Recipe *model.RecipeEntry
}

// Store is the capability set every storage engine implements. Reads always
// materialize fresh RecipeEntry values; engines never hand out live
// references to stored state. ReadAll returns a finite, independent
// enumeration, never a live view.
type Store interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// Create persists recipe under key, generating a fresh key when key
	// is empty, and returns the key used.
	Create(ctx context.Context, recipe *model.RecipeEntry, key string) (string, error)
	Read(ctx context.Context, key string) (*model.RecipeEntry, error)
	ReadAll(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, key string, recipe *model.RecipeEntry) error
	Delete(ctx context.Context, key string) error

	// ClearAll removes every record, leaving the engine as freshly
	// started and empty.
	ClearAll(ctx context.Context) error
	// Count reports the number of stored records.
	Count(ctx context.Context) (int64, error)
}

// Open constructs the storage engine selected by cfg.
func Open(cfg config.Storage) (Store, error) {
	switch cfg.Kind {
	case config.KindMemory:
		return NewMemoryStore(), nil
	case config.KindFS:
		return NewFileStore(cfg.Path)
	case config.KindSQL:
		return NewSQLStore(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", cfg.Kind)
	}
}

// newKey returns a random 128-bit token, hex-encoded to 32 characters.
func newKey() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
