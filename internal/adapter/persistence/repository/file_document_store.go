package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileDocumentStore keeps each collection in <dir>/<name>.json. Writes go
// through a temp file and a rename so a crash never leaves a torn document.
type FileDocumentStore struct {
	dir string
}

var _ DocumentStore = (*FileDocumentStore)(nil)

func NewFileDocumentStore(dir string) *FileDocumentStore {
	return &FileDocumentStore{dir: dir}
}

func (s *FileDocumentStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileDocumentStore) LoadDocument(_ context.Context, name string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return raw, err
}

func (s *FileDocumentStore) SaveDocument(ctx context.Context, name string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFileAtomicDurable(s.path(name), doc, 0o644)
}

func writeFileAtomicDurable(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
