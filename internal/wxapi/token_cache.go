package wxapi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenCache persists the session token in a single file readable only
// by the current user.
type TokenCache struct {
	Path string
}

// Load returns the cached token, or "" when nothing is cached.
func (c TokenCache) Load() (string, error) {
	if c.Path == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token cache: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes token, creating the parent directory when needed.
func (c TokenCache) Save(token string) error {
	if c.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create token cache directory: %w", err)
	}
	if err := os.WriteFile(c.Path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}
	return nil
}

// Clear removes the cached token. A missing file is not an error.
func (c TokenCache) Clear() error {
	if c.Path == "" {
		return nil
	}
	if err := os.Remove(c.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token cache: %w", err)
	}
	return nil
}
