// Package storage keeps member photos on the local filesystem under opaque
// random keys, so an uploaded file name never reaches the disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gestiontickets/internal/shared/config"
	"gestiontickets/internal/shared/logger"
)

type PhotoStore struct {
	dir     string
	baseURL string
	logger  logger.Interface
}

func NewPhotoStore(cfg *config.StorageConfig, log logger.Interface) (*PhotoStore, error) {
	if err := os.MkdirAll(cfg.PhotoDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &PhotoStore{
		dir:     cfg.PhotoDir,
		baseURL: strings.TrimRight(cfg.PhotoBaseURL, "/"),
		logger:  log,
	}, nil
}

// Put stores the photo under a fresh random key and returns it. The original
// file name only contributes its extension.
func (s *PhotoStore) Put(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return key, nil
}

// Delete removes a stored photo. A missing or undeletable file is logged and
// swallowed: the database reference is already gone and a leftover file is
// harmless.
func (s *PhotoStore) Delete(key string) {
	if key == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(key))); err != nil && !os.IsNotExist(err) {
		s.logger.Warnw("failed to delete photo file", "key", key, "error", err)
	}
}

// URL returns the public URL for a stored photo key, empty for an empty key.
func (s *PhotoStore) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + "/" + key
}

// Dir returns the directory photos are served from.
func (s *PhotoStore) Dir() string {
	return s.dir
}
