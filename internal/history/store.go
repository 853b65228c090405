package history

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// MaxEntries bounds how many city names are kept.
const MaxEntries = 5

type Store interface {
	Load() []string
	Save(names []string) error
}

// FileStore keeps the history as a JSON array of strings in a single file.
// There is no locking: concurrent writers race and the last write wins.
type FileStore struct {
	fs   afero.Fs
	path string
}

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Load returns an empty history when the file is missing, unreadable or malformed.
func (s *FileStore) Load() []string {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("history file not readable, starting empty")
		return []string{}
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil || names == nil {
		log.Warn().Err(err).Str("path", s.path).Msg("history file malformed, starting empty")
		return []string{}
	}

	return names
}

// Save keeps the first MaxEntries names and replaces the file by rename.
func (s *FileStore) Save(names []string) error {
	if len(names) > MaxEntries {
		names = names[:MaxEntries]
	}
	if names == nil {
		names = []string{}
	}

	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to close history file: %w", err)
	}

	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}

	return nil
}

// RecordVisit prepends name unless an identical string is already present.
// Comparison is case sensitive and existing entries are never reordered.
func RecordVisit(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}

	updated := make([]string, 0, len(names)+1)
	updated = append(updated, name)
	return append(updated, names...)
}
