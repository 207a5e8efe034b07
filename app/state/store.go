// Package state persists the set of asset identifiers seen by previous runs.
// The file is the only durable state the tool keeps: a JSON array of GUID
// strings, rewritten wholesale after every successful notification.
package state

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lysyi3m/album-biff/app/album"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the seen-set. A missing file is not an error: the first run
// simply treats every asset as new.
func (s *Store) Load() (map[album.GUID]struct{}, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[album.GUID]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var guids []album.GUID
	if err := json.Unmarshal(data, &guids); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	seen := make(map[album.GUID]struct{}, len(guids))
	for _, guid := range guids {
		seen[guid] = struct{}{}
	}
	return seen, nil
}

// Save overwrites the state file with the full current identifier universe,
// never just the delta. Identifiers that vanished upstream drop out naturally.
func (s *Store) Save(guids []album.GUID) error {
	data, err := json.MarshalIndent(guids, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
