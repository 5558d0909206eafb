package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const prefsFileName = "prefs.json"

// FileKV keeps preferences as a flat JSON object in <Dir>/prefs.json.
type FileKV struct {
	Dir string

	mu sync.Mutex
}

func (s *FileKV) path() string {
	return filepath.Join(s.Dir, prefsFileName)
}

func (s *FileKV) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	m := map[string]string{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path(), err)
	}
	return m, nil
}

func (s *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (s *FileKV) Set(_ context.Context, key, value string) error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("file store: missing dir")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, prefsFileName+".*.tmp", s.path(), b, 0o644)
}

func (s *FileKV) Close() error { return nil }
