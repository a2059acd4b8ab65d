package storage

import (
	"context"
	"errors"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

// Strategy gives access to the documents (tie point files, fits) referenced by an uri
type Strategy interface {
	Download(ctx context.Context, uri string, options ...Option) ([]byte, error)
	Upload(ctx context.Context, uri string, data []byte, options ...Option) error
	Delete(ctx context.Context, uri string, options ...Option) error
	Exist(ctx context.Context, uri string) (bool, error)
}

type Option func(o *option)

type option struct {
	IgnoreNotFound bool
	Overwrite      bool
}

// IgnoreNotFound makes Delete succeed when the file does not exist
func IgnoreNotFound() Option {
	return func(o *option) {
		o.IgnoreNotFound = true
	}
}

// NoOverwrite makes Upload fail when the file already exists
func NoOverwrite() Option {
	return func(o *option) {
		o.Overwrite = false
	}
}

func Apply(opts ...Option) option {
	opt := option{
		Overwrite: true,
	}
	for _, o := range opts {
		o(&opt)
	}
	return opt
}
