package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Session is the locally persisted login state.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// LoadSession reads a saved session from path. A missing, unreadable or
// corrupt file is an absent session, never an error: stale local state
// must not block a fresh login.
func LoadSession(path string) (*Session, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	if s.Token == "" {
		return nil, false
	}
	return &s, true
}

// SaveSession writes the session to path, creating parent directories.
// The file is written 0600 since it holds a live token.
func SaveSession(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// ClearSession removes the saved session. Removing a session that does
// not exist succeeds.
func ClearSession(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
