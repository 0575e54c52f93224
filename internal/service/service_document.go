package service

import (
	"context"
	"unicode/utf8"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

const maxTitleLength = 500

type documentService struct {
	documents store.DocumentRepository

	logger *logger.Logger
}

func NewDocumentService(documents store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{documents: documents, logger: logger}
}

func (d *documentService) List(ctx context.Context) ([]models.Document, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return d.documents.DocumentsByAuthor(ctx, caller.ID)
}

func (d *documentService) GetByID(ctx context.Context, id int64) (models.Document, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.Document{}, err
	}

	doc, err := d.documents.GetDocumentByID(ctx, id)
	if err != nil {
		return models.Document{}, err
	}
	// IsPublic marks a document shareable elsewhere; direct reads stay
	// owner-or-admin regardless.
	if err = ownerOrAdmin(caller, doc.AuthorID); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

func (d *documentService) Create(ctx context.Context, data models.CreateDocumentRequest) (models.InsertResult, error) {
	if err := validateDocumentTitle(data.Title); err != nil {
		return models.InsertResult{}, err
	}
	if data.Format != "" && data.Format != models.FormatMarkdown && data.Format != models.FormatRichText {
		return models.InsertResult{}, validationError("format must be %q or %q", models.FormatMarkdown, models.FormatRichText)
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}

	id, err := d.documents.CreateDocument(ctx, caller.ID, data)
	if err != nil {
		return models.InsertResult{}, err
	}

	return models.InsertResult{InsertID: id}, nil
}

func (d *documentService) Update(ctx context.Context, req models.UpdateDocumentRequest) (models.AffectedResult, error) {
	if req.Title != nil {
		if err := validateDocumentTitle(*req.Title); err != nil {
			return models.AffectedResult{}, err
		}
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	doc, err := d.documents.GetDocumentByID(ctx, req.ID)
	if err != nil {
		return models.AffectedResult{}, err
	}
	if err = ownerOrAdmin(caller, doc.AuthorID); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := d.documents.UpdateDocument(ctx, req.ID, req.DocumentPatch)
	if err != nil {
		return models.AffectedResult{}, err
	}

	return models.AffectedResult{AffectedRows: affected}, nil
}

func (d *documentService) Delete(ctx context.Context, id int64) (models.AffectedResult, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.AffectedResult{}, err
	}

	doc, err := d.documents.GetDocumentByID(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}
	if err = ownerOrAdmin(caller, doc.AuthorID); err != nil {
		return models.AffectedResult{}, err
	}

	affected, err := d.documents.DeleteDocument(ctx, id)
	if err != nil {
		return models.AffectedResult{}, err
	}
	d.logger.Info().Int64("documentId", id).Msg("document deleted")

	return models.AffectedResult{AffectedRows: affected}, nil
}

// Search matches against the caller's own documents only, admins included.
func (d *documentService) Search(ctx context.Context, query string) ([]models.Document, error) {
	if query == "" {
		return nil, validationError("query is required")
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return d.documents.SearchDocuments(ctx, query, caller.ID)
}

func validateDocumentTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return validationError("title must be 1..%d characters", maxTitleLength)
	}
	return nil
}
