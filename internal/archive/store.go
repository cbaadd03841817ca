// Package archive persists processed GPS results to a local JSON file,
// appending each record to the array the file holds.
package archive

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// Record is one archived processing result.
type Record struct {
	ID        string          `json:"id"`
	Budget    float64         `json:"budget"`
	Distance  float64         `json:"distance"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Status    string          `json:"status"`
	Response  json.RawMessage `json:"response"`
	Timestamp string          `json:"timestamp"`
}

// Store appends records to a JSON array file. Writes are serialized; the
// file is rewritten whole on every append, same as the original data file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append loads the existing array, adds record, and writes the file back.
func (s *Store) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked()
	if err != nil {
		return err
	}

	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}

// Read returns all archived records. A missing file reads as empty.
func (s *Store) Read() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *Store) readLocked() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
