package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperr "github.com/julianstephens/moodlit/internal/errors"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
)

// logKey is the top-level document key holding the date buckets. Any other
// top-level keys are carried through writes untouched.
const logKey = "log"

type document map[string]json.RawMessage

// JSONStore keeps the whole log in a single JSON document of the form
// {"log": {"2024-06-01": [{...}, ...]}}.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.write(document{logKey: json.RawMessage("{}")})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Append(date string, entry models.Entry) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	log, err := s.decodeLog(doc)
	if err != nil {
		return err
	}

	log.Append(date, entry)

	if err := s.encodeLog(doc, log); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *JSONStore) LoadAll() (models.Log, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return s.decodeLog(doc)
}

// Clear empties the log bucket map. Other top-level keys survive.
func (s *JSONStore) Clear() error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[logKey] = json.RawMessage("{}")
	return s.write(doc)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// read returns the raw document, or an empty one if the file does not exist yet.
func (s *JSONStore) read() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return document{}, nil
		}
		return nil, &apperr.StorageError{Op: "read", Path: s.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return document{}, nil
	}

	doc := document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &apperr.StorageError{Op: "parse", Path: s.path, Err: err}
	}
	return doc, nil
}

func (s *JSONStore) decodeLog(doc document) (models.Log, error) {
	log := models.Log{}
	raw, ok := doc[logKey]
	if !ok || len(raw) == 0 {
		return log, nil
	}

	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, &apperr.StorageError{Op: "parse", Path: s.path, Err: err}
	}
	if log == nil {
		// "log": null
		return models.Log{}, nil
	}

	for date, entries := range log {
		for i := range entries {
			if entries[i].Date != date {
				logger.Debug("Entry date does not match bucket key", "bucket", date, "date", entries[i].Date)
				entries[i].Date = date
			}
		}
	}
	return log, nil
}

func (s *JSONStore) encodeLog(doc document, log models.Log) error {
	raw, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to serialize log: %w", err)
	}
	doc[logKey] = raw
	return nil
}

// write replaces the file atomically: temp file first, then rename.
func (s *JSONStore) write(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &apperr.StorageError{Op: "mkdir", Path: filepath.Dir(s.path), Err: err}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return &apperr.StorageError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return &apperr.StorageError{Op: "write", Path: s.path, Err: err}
	}

	logger.Debug("Wrote store", "path", s.path, "bytes", len(data))
	return nil
}
