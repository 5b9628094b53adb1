// Package storage opens article snapshots from the local filesystem or S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound is returned when the snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Opener opens a snapshot by location.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// FileOpener reads from the local filesystem.
type FileOpener struct{}

// Open opens path. A missing file maps to ErrNotFound.
func (FileOpener) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return f, nil
}

// Router dispatches s3:// locations to an S3 opener and everything else to
// the filesystem. The S3 client is created on first use.
type Router struct {
	Files FileOpener
	S3    func(ctx context.Context) (Opener, error)
}

// NewRouter returns a Router whose S3 client is built from cfg.
func NewRouter(cfg S3Config) *Router {
	return &Router{
		S3: func(ctx context.Context) (Opener, error) {
			return NewS3(ctx, cfg)
		},
	}
}

// Open picks the backend for location.
func (r *Router) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsS3(location) {
		if r.S3 == nil {
			return nil, fmt.Errorf("no S3 backend configured for %s", location)
		}
		s3, err := r.S3(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating S3 client: %w", err)
		}
		return s3.Open(ctx, location)
	}
	return r.Files.Open(ctx, location)
}

// ReadAll opens location and reads it fully.
func ReadAll(ctx context.Context, o Opener, location string) ([]byte, error) {
	rc, err := o.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// IsS3 reports whether location is an s3:// URL.
func IsS3(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// ParseS3 splits s3://bucket/key into its parts.
func ParseS3(location string) (bucket, key string, err error) {
	if !IsS3(location) {
		return "", "", fmt.Errorf("not an s3 location: %q", location)
	}
	rest := strings.TrimPrefix(location, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 location must be s3://bucket/key, got %q", location)
	}
	return bucket, key, nil
}
