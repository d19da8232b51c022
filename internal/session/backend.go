// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"

	"craftlink/adminctl/internal/logging"
	"craftlink/adminctl/internal/xdg"
)

// Backend persists the serialized session under a single record.
// Load returns (nil, nil) when no session has been saved.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// ServiceName identifies the keychain/credential store namespace.
const ServiceName = "craftlink-adminctl"

// sessionKey is the single record holding the JSON-serialized session.
const sessionKey = "session_state"

// stateFileName is the file backend's record within the XDG state dir.
const stateFileName = "session.json"

// NewDefaultBackend returns the OS keychain backend when one is available and
// falls back to a private file in the XDG state dir otherwise, so headless
// hosts still get session continuity.
func NewDefaultBackend() Backend {
	if kb, err := newKeyringBackend(); err == nil {
		return kb
	}
	dir, err := xdg.StateDir()
	if err != nil {
		logging.L().Warn().Err(err).Msg("no usable session storage, sessions will not persist")
		return nil
	}
	return NewFileBackend(filepath.Join(dir, stateFileName))
}

// keyringBackend stores the session in the OS credential store.
type keyringBackend struct {
	ring keyring.Keyring
}

func newKeyringBackend() (*keyringBackend, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		},
		PassPrefix:    ServiceName,
		WinCredPrefix: ServiceName,
	})
	if err != nil {
		return nil, err
	}
	return &keyringBackend{ring: ring}, nil
}

func (b *keyringBackend) Load() ([]byte, error) {
	it, err := b.ring.Get(sessionKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

func (b *keyringBackend) Save(data []byte) error {
	return b.ring.Set(keyring.Item{Key: sessionKey, Data: data})
}

func (b *keyringBackend) Clear() error {
	if err := b.ring.Remove(sessionKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// FileBackend stores the session as a 0600 JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file-based session backend at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Save(data []byte) error {
	return os.WriteFile(b.path, data, 0o600)
}

func (b *FileBackend) Clear() error {
	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
