package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/repository"
)

// allowedExtensions is advisory only: it decides which response the caller
// gets, never whether the file is stored.
var allowedExtensions = map[string]bool{
	"pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "doc": true, "docx": true,
}

type FileService struct {
	files     *repository.FileRepository
	uploadDir string
}

func NewFileService(files *repository.FileRepository, uploadDir string) *FileService {
	return &FileService{files: files, uploadDir: uploadDir}
}

// Save writes the upload to disk under a random prefix concatenated with the
// client-supplied name (taken verbatim, untrusted) and records its metadata
// for the demo user. The returned bool reports whether the extension was on
// the allowlist; the file is persisted identically either way.
func (s *FileService) Save(filename string, src io.Reader) (*model.UploadedFile, bool, error) {
	allowed := extensionAllowed(filename)

	savedName := uuid.NewString() + "_" + filename
	path := filepath.Join(s.uploadDir, savedName)
	dst, err := os.Create(path)
	if err != nil {
		return nil, allowed, fmt.Errorf("create upload file: %w", err)
	}
	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, allowed, fmt.Errorf("write upload file: %w", err)
	}

	info := model.UploadedFile{
		ID:            uuid.NewString(),
		Filename:      filename,
		SavedFilename: savedName,
		Filepath:      path,
		Size:          size,
		UploadDate:    time.Now().UTC().Format(time.RFC3339),
	}
	s.files.Add(model.DemoUserID, info)
	return &info, allowed, nil
}

func (s *FileService) ForUser(userID int) []model.UploadedFile {
	return s.files.ByUser(userID)
}

func extensionAllowed(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}
