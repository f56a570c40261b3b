package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/RD107924/ruandi-shop-v2/config"
)

// FileStorage 目录下一键一文件，写入走临时文件加改名，避免写一半被读到
type FileStorage struct {
	dir string
}

func NewFileStorage(conf *config.Config) (*FileStorage, error) {
	dir := ""
	if conf.Storage != nil {
		dir = conf.Storage.Dir
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "ruandi-shop")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStorage) Load(_ context.Context, key string) ([]byte, error) {
	val, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return val, err
}

func (f *FileStorage) Save(_ context.Context, key string, val []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, val, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
