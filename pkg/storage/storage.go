// Package storage defines the persistence sink used by the catalog store.
// A sink is a small key-value collaborator: the engine serializes its two
// collections independently under two keys and tolerates absent or
// malformed stored values.
package storage

// Sink persists opaque serialized values under string keys.
type Sink interface {
	// Save stores value under key, replacing any previous value.
	Save(key string, value []byte) error

	// Load returns the value stored under key. The boolean reports
	// whether a value was present.
	Load(key string) ([]byte, bool, error)
}
