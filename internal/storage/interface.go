package storage

import "github.com/julianstephens/moodlit/internal/models"

// Provider is the entry store. Every call reads or writes the backing store
// directly; nothing is cached between calls.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Entries
	Append(date string, entry models.Entry) error
	LoadAll() (models.Log, error)
	Clear() error

	// Utils
	GetConfigPath() string
}
