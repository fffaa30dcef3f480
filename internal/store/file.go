package store

import (
	"context"
	"os"
	"path/filepath"
)

// FileKV keeps one JSON file per slot under a data directory. Writes go
// through a temp file and rename so a crash never leaves a torn slot.
type FileKV struct {
	dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(slot string) string {
	return filepath.Join(f.dir, slot+".json")
}

func (f *FileKV) Get(_ context.Context, slot string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileKV) Set(_ context.Context, slot string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, slot+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path(slot)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
