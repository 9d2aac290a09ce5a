// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text
// files, one secret per file: the filename is the key and the trimmed
// contents are the value. deckgen reads the HTTP API key from
// .secrets/api-key when it is not set through configuration.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// APIKeyFile is the well-known key file for the HTTP API bearer token.
const APIKeyFile = "api-key"

// Store is an immutable snapshot of a secrets directory.
type Store map[string]string

// Load reads every regular file in dir into a Store. A missing
// directory is not an error and yields an empty store; unreadable files
// produce a warning on stderr but do not abort. Dotfiles are ignored.
func Load(dir string) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Store)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s[entry.Name()] = value
		}
	}

	return s, nil
}

// Get returns the secret for key, or fallback when fallback is already
// set or the key is absent.
func (s Store) Get(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}
