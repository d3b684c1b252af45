package storage

import (
	"path/filepath"
	"strings"
)

// New picks a store implementation from the file extension: ".db",
// ".sqlite" and ".sqlite3" use SQLite, everything else is a JSON document.
func New(path string) Provider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path)
	default:
		return NewJSONStore(path)
	}
}

// IsSQLitePath reports whether New would open path as a SQLite store.
func IsSQLitePath(path string) bool {
	_, ok := New(path).(*SQLiteStore)
	return ok
}

// CopyAll appends every entry of src into dst, oldest bucket first, keeping
// the per-day logging order. It returns the number of entries copied.
func CopyAll(src, dst Provider) (int, error) {
	log, err := src.LoadAll()
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, date := range log.Dates() {
		for _, entry := range log[date] {
			if err := dst.Append(date, entry); err != nil {
				return copied, err
			}
			copied++
		}
	}
	return copied, nil
}
