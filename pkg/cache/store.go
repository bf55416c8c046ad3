// Package cache is a keyed store for completed translations. Keys are
// derived from the model, the language pair, and the input text, so an
// identical request can be answered without a provider round trip.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Entry is one cached translation.
type Entry struct {
	// Key is the derived identifier (SHA-256, hex-encoded)
	Key string `json:"key"`

	Model      string `json:"model"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`

	// Input is the caller's original text.
	Input string `json:"input"`

	// Translated is the provider's text, stored verbatim.
	Translated string `json:"translated"`

	CreatedAt time.Time `json:"created_at"`
}

// NewEntry builds an Entry with its derived key.
func NewEntry(model, sourceLang, targetLang, input, translated string) *Entry {
	return &Entry{
		Key:        Key(model, sourceLang, targetLang, input),
		Model:      model,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Input:      input,
		Translated: translated,
		CreatedAt:  time.Now().UTC(),
	}
}

// Key derives the cache key for a translation request. The same
// model/language/input always produces the same key.
func Key(model, sourceLang, targetLang, input string) string {
	h := sha256.New()
	for _, part := range []string{model, sourceLang, targetLang, input} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Store defines the interface for persisting and retrieving cached
// translations from a storage backend.
type Store interface {
	// Put stores an entry. If the entry already exists (by key), this is a no-op.
	Put(ctx context.Context, entry *Entry) error

	// Get retrieves an entry by its key. Returns ErrNotFound if the entry doesn't exist.
	Get(ctx context.Context, key string) (*Entry, error)

	// Has checks if an entry exists by its key.
	Has(ctx context.Context, key string) (bool, error)

	// Len returns the number of entries in the store.
	Len(ctx context.Context) (int, error)

	// Close closes the store and releases any resources.
	Close() error
}

// ErrNotFound is returned when an entry doesn't exist in the store.
type ErrNotFound struct {
	Key string
}

func (e ErrNotFound) Error() string {
	if e.Key == "" {
		return "entry not found"
	}

	return "entry not found: " + e.Key
}
