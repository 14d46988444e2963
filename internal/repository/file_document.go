package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileDocumentRepo writes the contract to a single file on disk.
type FileDocumentRepo struct {
	path string
	perm os.FileMode
}

// NewFileDocumentRepo returns a repo writing to path with 0644 permissions.
func NewFileDocumentRepo(path string) *FileDocumentRepo {
	return &FileDocumentRepo{path: path, perm: 0o644}
}

// Path returns the destination file.
func (r *FileDocumentRepo) Path() string { return r.path }

// Write replaces the file content with text, creating parent directories as
// needed. The new content goes to a temporary sibling first and is renamed
// into place, so a failed write leaves the previous file untouched.
func (r *FileDocumentRepo) Write(ctx context.Context, text string) (string, error) {
	if r.path == "" {
		return "", fmt.Errorf("document repo: no output path configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("document repo: ensure dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("document repo: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("document repo: write %s: %w", r.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("document repo: sync %s: %w", r.path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("document repo: close %s: %w", r.path, err)
	}
	if err := os.Chmod(tmpName, r.perm); err != nil {
		cleanup()
		return "", fmt.Errorf("document repo: chmod %s: %w", r.path, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return "", fmt.Errorf("document repo: replace %s: %w", r.path, err)
	}
	return r.path, nil
}

// CreateNew writes text to a file that must not exist yet. The existence
// check and the creation are one O_EXCL open, so a file created
// concurrently is never clobbered. The error wraps os.ErrExist when the
// file is already there.
func (r *FileDocumentRepo) CreateNew(ctx context.Context, text string) (string, error) {
	if r.path == "" {
		return "", fmt.Errorf("document repo: no output path configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return "", fmt.Errorf("document repo: ensure dir: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, r.perm)
	if err != nil {
		return "", fmt.Errorf("document repo: create %s: %w", r.path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		_ = os.Remove(r.path)
		return "", fmt.Errorf("document repo: write %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(r.path)
		return "", fmt.Errorf("document repo: close %s: %w", r.path, err)
	}
	return r.path, nil
}
