package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps one JSON file per chart record in a data directory. The
// commitment index is rebuilt by scanning the directory on open, and all
// writes go through a mutex, so the unique-commitment check and the write
// are atomic with respect to each other. Single-process use only.
type FileStore struct {
	dir string

	mu          sync.Mutex
	commitments map[string]string // commitment -> chart id
}

// NewFileStore opens (creating if needed) the data directory and indexes
// the records already in it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}
	s := &FileStore{dir: dir, commitments: make(map[string]string)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "scanning data directory")
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		rec, err := s.readFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "indexing %s", e.Name())
		}
		s.commitments[rec.Commitment] = rec.ID
	}
	return s, nil
}

func (s *FileStore) Create(ctx context.Context, rec ChartRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.commitments[rec.Commitment]; ok {
		return ErrDuplicateCommitment
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding chart record")
	}

	// Write-then-rename so a crash never leaves a half-written record that
	// the index scan would trip over.
	final := filepath.Join(s.dir, rec.ID+".json")
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "writing chart record")
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "placing chart record")
	}

	s.commitments[rec.Commitment] = rec.ID
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (ChartRecord, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return ChartRecord{}, ErrNotFound
	}
	rec, err := s.readFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return ChartRecord{}, ErrNotFound
		}
		return ChartRecord{}, err
	}
	return rec, nil
}

func (s *FileStore) readFile(path string) (ChartRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChartRecord{}, errors.Wrap(err, "reading chart record")
	}
	var rec ChartRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ChartRecord{}, errors.Wrap(err, "decoding chart record")
	}
	return rec, nil
}
