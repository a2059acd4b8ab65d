package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/geotransform/interface/storage"
)

type fileSystemStrategy struct {
}

func NewFileSystemStrategy(ctx context.Context) (storage.Strategy, error) {
	return fileSystemStrategy{}, nil
}

func formatError(err error) error {
	var epath *os.PathError
	if errors.As(err, &epath) && os.IsNotExist(epath) {
		return storage.ErrFileNotFound
	}
	return err
}

func toPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

func (s fileSystemStrategy) Download(ctx context.Context, uri string, options ...storage.Option) ([]byte, error) {
	data, err := os.ReadFile(toPath(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", formatError(err))
	}
	return data, nil
}

func (s fileSystemStrategy) Upload(ctx context.Context, uri string, data []byte, options ...storage.Option) error {
	opts := storage.Apply(options...)
	path := toPath(uri)

	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return err
		}
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Overwrite {
		flag |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

func (s fileSystemStrategy) Delete(ctx context.Context, uri string, options ...storage.Option) error {
	opts := storage.Apply(options...)

	if err := os.Remove(toPath(uri)); err != nil {
		if !opts.IgnoreNotFound || !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove file: %w", formatError(err))
		}
	}

	return nil
}

func (s fileSystemStrategy) Exist(ctx context.Context, uri string) (bool, error) {
	if _, err := os.Stat(toPath(uri)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
