package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	domainerrors "kyc-loan.backend/internal/domain/errors"
)

// FileStore persists uploaded documents on local disk. Stored names embed the
// owner id and a random suffix so concurrent uploads never collide.
type FileStore struct {
	uploadDir string
}

func NewFileStore(uploadDir string) *FileStore {
	return &FileStore{uploadDir: uploadDir}
}

// SaveUpload writes the multipart file under the upload directory and returns
// the stored path. The original filename contributes only its extension.
func (s *FileStore) SaveUpload(ownerID uuid.UUID, header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s_%s%s", ownerID, uuid.New().String()[:8], ext)
	path := filepath.Join(s.uploadDir, name)

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}
	return path, nil
}

// Remove deletes a stored file. A missing file is not an error, the row it
// backed may already be gone.
func (s *FileStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
	}
	return nil
}
