package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kaanb/courseboard/internal/pkg/logger"
)

// LocalStorage stores blobs as files under a single base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// Save streams content into a newly named blob. The generated name keeps the
// original extension so content sniffing and downloads behave sensibly.
func (ls *LocalStorage) Save(content io.Reader, origName string) (string, error) {
	ext := filepath.Ext(origName)
	name := uuid.New().String() + ext

	dstPath := filepath.Join(ls.basePath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write blob content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("origName", origName).Str("saved_as", name).Msg("Blob saved")
	return name, nil
}

// Open returns a streaming reader for the named blob.
func (ls *LocalStorage) Open(name string) (io.ReadCloser, error) {
	// Reject anything that could escape the base directory.
	if name == "" || name != filepath.Base(name) {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(filepath.Join(ls.basePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", name, err)
	}
	return f, nil
}

// Delete removes a blob from the store. Missing blobs are ignored.
func (ls *LocalStorage) Delete(name string) error {
	if name == "" || name != filepath.Base(name) {
		return nil
	}

	path := filepath.Join(ls.basePath, name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("Blob to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", path).Msg("Failed to delete blob")
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}
