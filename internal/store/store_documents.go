package store

import (
	"context"
	"sort"
	"strings"

	"github.com/dkurbatov/lifehub/models"
)

// DocumentsByAuthor returns all documents owned by authorID, newest-updated
// first.
func (s *Store) DocumentsByAuthor(ctx context.Context, authorID int64) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Document, 0)
	for _, d := range s.documents {
		if d.AuthorID == authorID {
			result = append(result, d)
		}
	}
	sortDocumentsByUpdatedDesc(result)

	return result, nil
}

// GetDocumentByID returns the document with the given id or ErrNotFound.
func (s *Store) GetDocumentByID(ctx context.Context, id int64) (models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.documents[id]
	if !ok {
		return models.Document{}, ErrNotFound
	}

	return d, nil
}

// CreateDocument inserts a new document owned by authorID. Format defaults
// to markdown when empty.
func (s *Store) CreateDocument(ctx context.Context, authorID int64, data models.CreateDocumentRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	format := data.Format
	if format == "" {
		format = models.FormatMarkdown
	}

	now := s.now()
	s.documentSeq++
	doc := models.Document{
		ID:         s.documentSeq,
		Title:      data.Title,
		Content:    data.Content,
		Format:     format,
		CategoryID: data.CategoryID,
		AuthorID:   authorID,
		Tags:       data.Tags,
		IsPublic:   data.IsPublic,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.documents[doc.ID] = doc

	return doc.ID, nil
}

// UpdateDocument applies a partial patch to the document with the given id
// and refreshes its updated timestamp. Returns the number of affected
// records: zero when the id does not exist, one otherwise.
func (s *Store) UpdateDocument(ctx context.Context, id int64, patch models.DocumentPatch) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return 0, nil
	}

	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Content != nil {
		doc.Content = *patch.Content
	}
	if patch.Format != nil {
		doc.Format = *patch.Format
	}
	if patch.CategoryID != nil {
		doc.CategoryID = patch.CategoryID
	}
	if patch.Tags != nil {
		doc.Tags = *patch.Tags
	}
	if patch.IsPublic != nil {
		doc.IsPublic = *patch.IsPublic
	}
	doc.UpdatedAt = s.now()
	s.documents[id] = doc

	return 1, nil
}

// DeleteDocument removes the document with the given id. Files referencing
// it keep their dangling DocumentID; the store never cascades. Returns the
// number of affected records.
func (s *Store) DeleteDocument(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return 0, nil
	}
	delete(s.documents, id)

	return 1, nil
}

// SearchDocuments performs a case-sensitive substring match against title
// and content. When authorID is non-zero the search is scoped to that
// owner. Matches are ordered newest-updated first.
func (s *Store) SearchDocuments(ctx context.Context, query string, authorID int64) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Document, 0)
	for _, d := range s.documents {
		if authorID != 0 && d.AuthorID != authorID {
			continue
		}
		if strings.Contains(d.Title, query) || strings.Contains(d.Content, query) {
			result = append(result, d)
		}
	}
	sortDocumentsByUpdatedDesc(result)

	return result, nil
}

func sortDocumentsByUpdatedDesc(docs []models.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].ID > docs[j].ID
		}
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
}
