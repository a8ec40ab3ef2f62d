// Package storage keeps uploaded documents (resumes) on the local
// filesystem. Records only ever hold paths relative to the root.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsafePath = errors.New("unsafe storage path")
	ErrNotFound   = errors.New("stored file not found")
)

// LocalStore resolves relative paths under Root.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{Root: root}
}

// SafePath joins rel onto root after rejecting empty, absolute, URL-shaped
// and traversing paths. The result is guaranteed to stay inside root.
func SafePath(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", ErrUnsafePath
	}
	if strings.Contains(rel, "://") || strings.HasPrefix(rel, "//") {
		return "", ErrUnsafePath
	}
	rel = filepath.FromSlash(strings.ReplaceAll(rel, "\\", "/"))
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", ErrUnsafePath
	}

	cleaned := filepath.Clean(rel)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", ErrUnsafePath
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	full := filepath.Join(rootAbs, cleaned)
	if full != rootAbs && !strings.HasPrefix(full, rootAbs+string(filepath.Separator)) {
		return "", ErrUnsafePath
	}
	return full, nil
}

// Save copies header into Root/subdir with a random name and returns the
// relative path to store on the record.
func (s *LocalStore) Save(header *multipart.FileHeader, subdir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	rel := filepath.ToSlash(filepath.Join(subdir, uuid.NewString()+ext))

	full, err := SafePath(s.Root, rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(full)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(full)
		return "", err
	}
	return rel, nil
}

// Remove deletes rel. A file that is already gone yields ErrNotFound so the
// caller can decide whether that matters.
func (s *LocalStore) Remove(rel string) error {
	full, err := SafePath(s.Root, rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return err
	}
	return nil
}

// Resolve returns the absolute path of an existing file.
func (s *LocalStore) Resolve(rel string) (string, error) {
	full, err := SafePath(s.Root, rel)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return full, nil
}
