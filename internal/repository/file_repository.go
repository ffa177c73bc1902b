package repository

import "nextgenmobiles/backend/internal/model"

// FileRepository indexes uploaded-file metadata by owning user id. The files
// themselves live on disk under the configured upload directory.
type FileRepository struct {
	byUser map[int][]model.UploadedFile
}

func NewFileRepository() *FileRepository {
	return &FileRepository{byUser: make(map[int][]model.UploadedFile)}
}

func (r *FileRepository) Add(userID int, f model.UploadedFile) {
	r.byUser[userID] = append(r.byUser[userID], f)
}

func (r *FileRepository) ByUser(userID int) []model.UploadedFile {
	files := r.byUser[userID]
	if files == nil {
		return []model.UploadedFile{}
	}
	return files
}
