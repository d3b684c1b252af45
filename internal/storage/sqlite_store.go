package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	apperr "github.com/julianstephens/moodlit/internal/errors"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/migration"
	"github.com/julianstephens/moodlit/internal/models"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.open()
}

// open lazily connects and brings the schema up to date. The store file is
// created on first use.
func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &apperr.StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &apperr.StorageError{Op: "open", Path: s.path, Err: err}
	}
	s.db = db

	if err := s.migrate(); err != nil {
		s.db.Close()
		s.db = nil
		return &apperr.StorageError{Op: "migrate", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) migrate() error {
	applied, err := migration.NewRunner(s.db, migrations()).Apply()
	if err != nil {
		return err
	}
	if applied > 0 {
		logger.Info("Applied database schema", "path", s.path, "migrations", applied)
	}
	return nil
}

// SchemaVersion reports the applied and the newest known schema version.
func (s *SQLiteStore) SchemaVersion() (current, latest int, err error) {
	if err := s.open(); err != nil {
		return 0, 0, err
	}
	runner := migration.NewRunner(s.db, migrations())
	if current, err = runner.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	if latest, err = runner.LatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Append(date string, entry models.Entry) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &apperr.StorageError{Op: "append", Path: s.path, Err: err}
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRow("SELECT COALESCE(MAX(seq), 0) + 1 FROM entries WHERE day = ?", date).Scan(&seq); err != nil {
		return &apperr.StorageError{Op: "append", Path: s.path, Err: err}
	}

	_, err = tx.Exec(
		`INSERT INTO entries (id, day, seq, mood, activity, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		date,
		seq,
		string(entry.Mood),
		entry.Activity,
		entry.Notes,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return &apperr.StorageError{Op: "append", Path: s.path, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &apperr.StorageError{Op: "append", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) LoadAll() (models.Log, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT day, mood, activity, notes FROM entries ORDER BY day, seq")
	if err != nil {
		return nil, &apperr.StorageError{Op: "read", Path: s.path, Err: err}
	}
	defer rows.Close()

	log := models.Log{}
	for rows.Next() {
		var (
			day  string
			mood string
			e    models.Entry
		)
		if err := rows.Scan(&day, &mood, &e.Activity, &e.Notes); err != nil {
			return nil, &apperr.StorageError{Op: "read", Path: s.path, Err: err}
		}
		e.Mood = models.Mood(mood)
		log.Append(day, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperr.StorageError{Op: "read", Path: s.path, Err: err}
	}

	return log, nil
}

func (s *SQLiteStore) Clear() error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &apperr.StorageError{Op: "clear", Path: s.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return &apperr.StorageError{Op: "clear", Path: s.path, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &apperr.StorageError{Op: "clear", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
