package session

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a small JSON file so a session survives
// a restart of the CLI.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load returns the persisted token, or "" when none is stored.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", err
	}
	return stored[common.TokenStorageKey], nil
}

func (s *FileTokenStore) Save(token string) error {
	data, err := json.Marshal(map[string]string{common.TokenStorageKey: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
