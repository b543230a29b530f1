// Package storage implements the attachment file store on the local
// filesystem.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/heartmarshall/default-registry/internal/config"
	"github.com/heartmarshall/default-registry/internal/domain"
)

// sniffLen is how many leading bytes are inspected for content detection.
const sniffLen = 3072

// Object describes a stored file.
type Object struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// Local stores files under a root directory and serves them from a public
// base path.
type Local struct {
	root     string
	baseURL  string
	maxBytes int64
}

// NewLocal creates the root directory if needed.
func NewLocal(cfg config.StorageConfig) (*Local, error) {
	root, err := filepath.Abs(cfg.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("storage root: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Local{
		root:     root,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes: cfg.MaxUploadBytes,
	}, nil
}

// Put writes r under key and returns the stored object. An empty or generic
// contentType is replaced by the detected one. Content larger than the
// configured limit is rejected with a validation error.
func (s *Local) Put(ctx context.Context, key string, r io.Reader, contentType string) (Object, error) {
	full, err := s.resolve(key)
	if err != nil {
		return Object{}, err
	}
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Object{}, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(head).String()
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return Object{}, fmt.Errorf("create object dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return Object{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	body := io.MultiReader(bytes.NewReader(head), r)
	limit := s.maxBytes
	if limit > 0 {
		body = io.LimitReader(body, limit+1)
	}
	size, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Object{}, fmt.Errorf("write object %s: %w", key, err)
	}
	if limit > 0 && size > limit {
		return Object{}, domain.NewValidationError("file", fmt.Sprintf("exceeds %d bytes", limit))
	}

	if err := os.Rename(tmp.Name(), full); err != nil {
		return Object{}, fmt.Errorf("commit object %s: %w", key, err)
	}

	return Object{Key: key, URL: s.URL(key), ContentType: contentType, Size: size}, nil
}

// Presign returns the public URL of key. ok is false when the object does
// not exist.
func (s *Local) Presign(ctx context.Context, key string) (string, bool, error) {
	full, err := s.resolve(key)
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("stat object %s: %w", key, err)
	}
	return s.URL(key), true, nil
}

// Open returns the stored file for reading. Missing objects yield
// domain.ErrNotFound.
func (s *Local) Open(key string) (*os.File, error) {
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open object %s: %w", key, err)
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
	}
	return f, nil
}

// Ping reports whether the storage root is still an accessible directory.
func (s *Local) Ping(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("storage root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", s.root)
	}
	return nil
}

// URL returns the public path of key.
func (s *Local) URL(key string) string {
	return s.baseURL + "/" + key
}

// resolve maps key to a path inside root and rejects anything that would
// escape it.
func (s *Local) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if key == "" || clean == "/" || clean[1:] != key {
		return "", domain.NewValidationError("key", "invalid storage key")
	}
	return filepath.Join(s.root, filepath.FromSlash(clean[1:])), nil
}
