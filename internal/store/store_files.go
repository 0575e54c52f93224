package store

import (
	"context"
	"sort"

	"github.com/dkurbatov/lifehub/models"
)

// InsertFile is the payload for recording uploaded-file metadata. The blob
// itself is already in external storage by the time this is called.
type InsertFile struct {
	Filename   string
	StorageKey string
	URL        string
	MimeType   string
	Size       int64
	UploaderID int64
	DocumentID *int64
}

// FilesByUploader returns all file records owned by uploaderID, newest
// first.
func (s *Store) FilesByUploader(ctx context.Context, uploaderID int64) ([]models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.File, 0)
	for _, f := range s.files {
		if f.UploaderID == uploaderID {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// GetFileByID returns the file record with the given id or ErrNotFound.
func (s *Store) GetFileByID(ctx context.Context, id int64) (models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[id]
	if !ok {
		return models.File{}, ErrNotFound
	}

	return f, nil
}

// CreateFile records metadata for an uploaded blob.
func (s *Store) CreateFile(ctx context.Context, data InsertFile) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileSeq++
	file := models.File{
		ID:         s.fileSeq,
		Filename:   data.Filename,
		StorageKey: data.StorageKey,
		URL:        data.URL,
		MimeType:   data.MimeType,
		Size:       data.Size,
		UploaderID: data.UploaderID,
		DocumentID: data.DocumentID,
		CreatedAt:  s.now(),
	}
	s.files[file.ID] = file

	return file.ID, nil
}

// DeleteFile removes the file record with the given id. Returns the number
// of affected records.
func (s *Store) DeleteFile(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return 0, nil
	}
	delete(s.files, id)

	return 1, nil
}
