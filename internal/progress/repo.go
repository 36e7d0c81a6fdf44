package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Repo loads and saves the whole progress store.
type Repo interface {
	// Load returns the persisted store, or an empty store if none exists.
	Load(ctx context.Context) (Store, error)

	// Save replaces the persisted store.
	Save(ctx context.Context, s Store) error
}

// FileRepo persists the store as indented JSON in a single file.
type FileRepo struct {
	Path string
}

// NewFileRepo returns a FileRepo for path.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{Path: path}
}

func (r *FileRepo) Load(_ context.Context) (Store, error) {
	data, err := os.ReadFile(r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress file: %w", err)
	}

	s := Store{}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode progress file %s: %w", r.Path, err)
	}
	if s == nil {
		s = Store{}
	}
	return s, nil
}

// Save writes to a temp file in the same directory and renames it over
// the target so an interrupted write leaves the old file intact.
func (r *FileRepo) Save(_ context.Context, s Store) error {
	if s == nil {
		s = Store{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}

// Backup renames the progress file to Path+".bak", replacing any older
// backup, and returns the new path. A missing file is not an error.
func (r *FileRepo) Backup() (string, error) {
	bak := r.Path + ".bak"
	err := os.Rename(r.Path, bak)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("back up progress file: %w", err)
	}
	return bak, nil
}

// MemoryRepo keeps the store in memory. Load and Save copy, so callers
// never share maps with the repo.
type MemoryRepo struct {
	mu    sync.Mutex
	store Store
	Saves int
}

// NewMemoryRepo returns a MemoryRepo seeded with s.
func NewMemoryRepo(s Store) *MemoryRepo {
	if s == nil {
		s = Store{}
	}
	return &MemoryRepo{store: s.Clone()}
}

func (r *MemoryRepo) Load(_ context.Context) (Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Clone(), nil
}

func (r *MemoryRepo) Save(_ context.Context, s Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = s.Clone()
	r.Saves++
	return nil
}
