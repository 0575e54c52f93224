package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/adapter"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

type fileService struct {
	files store.FileRepository
	blobs adapter.BlobStorage
	uuid  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewFileService(files store.FileRepository, blobs adapter.BlobStorage, logger *logger.Logger) FileService {
	return &fileService{files: files, blobs: blobs, uuid: utils.NewUUIDGenerator(), logger: logger}
}

func (f *fileService) List(ctx context.Context) ([]models.File, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return f.files.FilesByUploader(ctx, caller.ID)
}

// Upload decodes the base64 payload, pushes the bytes to blob storage under
// a collision-free key, then records the metadata. Nothing is recorded when
// the blob put fails.
func (f *fileService) Upload(ctx context.Context, data models.UploadFileRequest) (models.File, error) {
	if data.Filename == "" {
		return models.File{}, validationError("filename is required")
	}
	if data.Content == "" {
		return models.File{}, validationError("content is required")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.File{}, err
	}

	content, err := base64.StdEncoding.DecodeString(data.Content)
	if err != nil {
		return models.File{}, validationError("content is not valid base64")
	}

	key := fmt.Sprintf("%d/files/%s-%s", caller.ID, f.uuid.Generate(), data.Filename)
	url, err := f.blobs.Put(ctx, key, data.MimeType, content)
	if err != nil {
		return models.File{}, fmt.Errorf("store blob: %w", err)
	}

	id, err := f.files.CreateFile(ctx, store.InsertFile{
		Filename:   data.Filename,
		StorageKey: key,
		URL:        url,
		MimeType:   data.MimeType,
		Size:       int64(len(content)),
		UploaderID: caller.ID,
		DocumentID: data.DocumentID,
	})
	if err != nil {
		return models.File{}, err
	}
	f.logger.Info().Int64("fileId", id).Str("key", key).Msg("file uploaded")

	return f.files.GetFileByID(ctx, id)
}

func (f *fileService) Delete(ctx context.Context, id int64) (models.AffectedResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	file, err := f.files.GetFileByID(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}
	if err = ownerOrAdmin(caller, file.UploaderID); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := f.files.DeleteFile(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}
