package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"fintrack/models"
)

// FileStore persists the collection as a single JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore prepares a file-backed store at path, creating parent
// directories as needed. The file itself is created on first Save.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads the whole document. A missing or unreadable file yields an
// empty collection with a zero summary; corruption must not take the
// service down, so the fault is only recorded.
func (fs *FileStore) Load() (models.Document, error) {
	empty := models.Document{Transactions: []models.Transaction{}}

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", fs.path).Msg("data file unreadable, starting from empty collection")
		}
		return empty, nil
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn().Err(err).Str("path", fs.path).Msg("data file corrupt, starting from empty collection")
		return empty, nil
	}
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	return doc, nil
}

// Save rewrites the document atomically: encode to a temp file in the
// same directory, sync, then rename over the old one.
func (fs *FileStore) Save(doc models.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), ".fintrack-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
