package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type StorageService interface {
	SaveFile(originalName string, src io.Reader) (string, string, int64, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile streams the upload to disk under a name of the form
// <upload-timestamp>_<sanitized original name>, which keeps stored names
// unique per submission. Returns the stored name, full path, and bytes
// written.
func (s *storageService) SaveFile(originalName string, src io.Reader) (string, string, int64, error) {
	storedName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), SanitizeFilename(originalName))
	filePath := filepath.Join(s.uploadPath, storedName)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(filePath)
		return "", "", 0, fmt.Errorf("failed to save file: %w", err)
	}

	return storedName, filePath, written, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SanitizeFilename strips any directory segments from a client-supplied name
// and replaces whitespace with underscores. The name is advisory only; it is
// never used to infer content type.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}
