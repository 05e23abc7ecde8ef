// Package session implements the local persistent session mirror as a
// single JSON file.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"

	"github.com/pkg/errors"
)

type fileStore struct {
	path string
}

// NewFileStore creates a SessionStore persisting to the given path.
func NewFileStore(path string) service.SessionStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (*entity.Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read session mirror")
	}

	var identity entity.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, errors.Wrap(err, "failed to decode session mirror")
	}

	return &identity, nil
}

func (s *fileStore) Save(identity *entity.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "failed to encode session mirror")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create mirror directory")
	}

	// Write-then-rename so a crash never leaves a truncated mirror.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write session mirror")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace session mirror")
	}

	return nil
}

func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session mirror")
	}

	return nil
}
