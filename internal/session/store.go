package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// Store persists the session's two keys: the bearer token and the cached
// serialized profile. The pair is always cleared together; a token with no
// profile is valid, a profile with no token is not.
type Store interface {
	Token() (string, bool)
	SetToken(token string) error
	Profile() (*owner.UserProfile, bool)
	SetProfile(profile *owner.UserProfile) error
	Clear() error
}

// MemoryStore keeps the session in process memory. Used in tests and for
// throwaway sessions.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	profile *owner.UserProfile
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Profile() (*owner.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil, false
	}
	p := *s.profile
	return &p, true
}

func (s *MemoryStore) SetProfile(profile *owner.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *profile
	s.profile = &p
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}

// fileState is the on-disk layout of a FileStore.
type fileState struct {
	Token   string             `json:"token,omitempty"`
	Profile *owner.UserProfile `json:"profile,omitempty"`
}

// FileStore persists the session as a mode-0600 JSON file, the durable
// key-value store of a headless deployment.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.read()
	return state.Token, state.Token != ""
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.read()
	state.Token = token
	return s.write(state)
}

func (s *FileStore) Profile() (*owner.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.read()
	return state.Profile, state.Profile != nil
}

func (s *FileStore) SetProfile(profile *owner.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.read()
	state.Profile = profile
	return s.write(state)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// read returns the current state, or an empty state if the file is missing
// or unreadable. A corrupt session file behaves like no session at all.
func (s *FileStore) read() fileState {
	var state fileState
	data, err := os.ReadFile(s.path)
	if err != nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return fileState{}
	}
	return state
}

func (s *FileStore) write(state fileState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
