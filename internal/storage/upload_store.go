package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

// Image types the backend accepts for KYC documents.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadStore stages KYC document files on disk until the final multipart
// registration submit, then hands out readers for them.
type UploadStore struct {
	rootPath       string
	maxUploadBytes int64
}

// NewUploadStore creates the staging directory.
func NewUploadStore(rootPath string, maxUploadMB int64) (*UploadStore, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create directory %s: %w", rootPath, err)
	}

	return &UploadStore{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Stage writes an uploaded document to the staging area and returns its
// path. The first bytes are sniffed so a renamed non-image is rejected
// before it ever reaches the backend.
func (s *UploadStore) Stage(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	head := make([]byte, 261)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("storage: failed to read document: %w", err)
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown || !allowedImageTypes[kind.MIME.Value] {
		return "", fmt.Errorf("storage: document must be a JPEG, PNG or WebP image")
	}

	safeName := sanitizeFilename(originalName)
	fileName := fmt.Sprintf("%s_%d%s", uuid.NewString(), time.Now().UnixNano(), filepath.Ext(safeName))
	targetPath := filepath.Join(s.rootPath, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create file: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: io.MultiReader(bytes.NewReader(head[:n]), r), N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: failed to write file: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: file exceeds the %d byte limit", s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: failed to close file: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", fmt.Errorf("storage: failed to rename file: %w", err)
	}

	return targetPath, nil
}

// Open returns a reader for a staged document.
func (s *UploadStore) Open(path string) (io.ReadCloser, error) {
	if filepath.Dir(path) != filepath.Clean(s.rootPath) {
		return nil, fmt.Errorf("storage: path %s is outside the staging area", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open staged document: %w", err)
	}
	return f, nil
}

// Remove deletes a staged document after a successful submit.
func (s *UploadStore) Remove(path string) error {
	if filepath.Dir(path) != filepath.Clean(s.rootPath) {
		return fmt.Errorf("storage: path %s is outside the staging area", path)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: failed to remove staged document: %w", err)
	}
	return nil
}

// sanitizeFilename strips path separators and suspicious characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
