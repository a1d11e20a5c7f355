package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type FileStorageInterface interface {
	Save(file io.Reader, originalFileName string, prefix string) (filePath string, err error)
	Delete(filePath string) error
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("could not create storage directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	ext := filepath.Ext(originalFileName)
	uniqueFileName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)

	datePath := time.Now().Format("2006/01/02")
	fullDirPath := filepath.Join(s.basePath, prefix, datePath)

	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(prefix, datePath, uniqueFileName)), nil
}

// Delete accepts the public URL form "/uploads/prefix/2006/01/02/file.jpg"
// and removes the file under basePath. A missing file counts as success.
func (s *LocalFileStorage) Delete(fileURL string) error {
	relativePath := strings.TrimPrefix(fileURL, "/uploads/")
	fullPath := filepath.Join(s.basePath, relativePath)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}
