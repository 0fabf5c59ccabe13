// Package storage provides the key-value persistence layer. Every top-level
// collection is serialized wholesale under its own string key after each
// mutation; loads substitute a fallback on missing or malformed data instead
// of failing.
package storage

import "encoding/json"

// KV is a synchronous string key-value store.
type KV interface {
	// Load returns the value stored under key, or false if the key is absent.
	Load(key string) (string, bool)
	// Store overwrites the whole value under key.
	Store(key, value string) error
}

// LoadJSON reads and unmarshals the value stored under key. On a missing key
// or malformed content it returns fallback; a stored value never fails a load.
func LoadJSON[T any](kv KV, key string, fallback T) T {
	raw, ok := kv.Load(key)
	if !ok {
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// StoreJSON marshals v and stores it under key.
func StoreJSON(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Store(key, string(data))
}
