package runtimeconfig

import (
	"time"

	"github.com/cocoonstack/hvconf/arch"
)

// Entry records the latest generation for one architecture.
type Entry struct {
	// ID is a deterministic UUIDv5 of "<arch>:<digest>": regenerating
	// the same content yields the same ID.
	ID          string            `json:"id"`
	Arch        arch.Architecture `json:"arch"`
	Digest      string            `json:"digest"`
	Path        string            `json:"path"`
	Fragments   []string          `json:"fragments,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Manifest is the generation index, keyed by architecture.
type Manifest struct {
	Generations map[string]*Entry `json:"generations"`
}

// Init implements storage.Initer. Called automatically by the JSON store
// after loading.
func (m *Manifest) Init() {
	if m.Generations == nil {
		m.Generations = make(map[string]*Entry)
	}
}
