// Package service owns the application state: the dish catalog, the
// current menu plan with its derived shopping list, and the saved-menu
// archive. Each service is the single controller of its state and calls
// the injected store after every committed mutation; a persistence
// failure is logged but never rolls back memory.
package service

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/menufacil/backend/internal/store"
)

var (
	// ErrNotFound is returned when an id matches nothing.
	ErrNotFound = errors.New("service: not found")
	// ErrNoPlan is returned when an operation needs a generated,
	// non-empty plan and there is none.
	ErrNoPlan = errors.New("service: no generated menu plan")
)

// loadJSON reads and decodes one state key. Missing and corrupt values
// both report ok=false so the caller falls back to built-in defaults;
// corrupt values are logged, never fatal.
func loadJSON(kv *store.KV, log *zap.SugaredLogger, key string, out any) bool {
	val, ok, err := kv.Get(key)
	if err != nil {
		log.Warnw("reading persisted state failed, using defaults", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		log.Warnw("persisted state is corrupt, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// persistJSON writes one state key, fire-and-forget.
func persistJSON(kv *store.KV, log *zap.SugaredLogger, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorw("encoding state failed", "key", key, "error", err)
		return
	}
	if err := kv.Put(key, string(data)); err != nil {
		log.Errorw("persisting state failed", "key", key, "error", err)
	}
}
