package service

import (
	"strings"
	"testing"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_GetByID_Visibility(t *testing.T) {
	f := newFixture(t)
	svc := NewDocumentService(f.store, logger.Nop())

	private, err := svc.Create(f.as(f.demo), models.CreateDocumentRequest{Title: "private notes"})
	require.NoError(t, err)
	public, err := svc.Create(f.as(f.demo), models.CreateDocumentRequest{Title: "shared notes", IsPublic: true})
	require.NoError(t, err)

	// Admins read anything.
	_, err = svc.GetByID(f.as(f.admin), private.InsertID)
	require.NoError(t, err)

	other, err := f.store.UpsertUser(f.anon(), models.UpsertUser{OpenID: "reader_1"})
	require.NoError(t, err)

	_, err = svc.GetByID(f.as(other), private.InsertID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// The isPublic flag does not open direct reads to other users.
	_, err = svc.GetByID(f.as(other), public.InsertID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	doc, err := svc.GetByID(f.as(f.demo), public.InsertID)
	require.NoError(t, err)
	assert.Equal(t, "shared notes", doc.Title)
}

func TestDocumentService_Update_GuardLeavesRecordUnchanged(t *testing.T) {
	f := newFixture(t)
	svc := NewDocumentService(f.store, logger.Nop())

	created, err := svc.Create(f.as(f.demo), models.CreateDocumentRequest{Title: "mine", Content: "v1"})
	require.NoError(t, err)

	other, err := f.store.UpsertUser(f.anon(), models.UpsertUser{OpenID: "intruder_1"})
	require.NoError(t, err)

	content := "hijacked"
	_, err = svc.Update(f.as(other), models.UpdateDocumentRequest{
		ID:            created.InsertID,
		DocumentPatch: models.DocumentPatch{Content: &content},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	doc, err := svc.GetByID(f.as(f.demo), created.InsertID)
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Content)
}

func TestDocumentService_Create_Validation(t *testing.T) {
	f := newFixture(t)
	svc := NewDocumentService(f.store, logger.Nop())
	ctx := f.as(f.demo)

	_, err := svc.Create(ctx, models.CreateDocumentRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, models.CreateDocumentRequest{Title: strings.Repeat("x", maxTitleLength+1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, models.CreateDocumentRequest{Title: "ok", Format: "asciidoc"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDocumentService_Search_Scope(t *testing.T) {
	f := newFixture(t)
	svc := NewDocumentService(f.store, logger.Nop())

	_, err := svc.Create(f.as(f.demo), models.CreateDocumentRequest{Title: "meeting notes"})
	require.NoError(t, err)
	_, err = svc.Create(f.as(f.admin), models.CreateDocumentRequest{Title: "meeting agenda"})
	require.NoError(t, err)

	// Every caller sees only their own matches, admins included.
	docs, err := svc.Search(f.as(f.demo), "meeting")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "meeting notes", docs[0].Title)

	docs, err = svc.Search(f.as(f.admin), "meeting")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "meeting agenda", docs[0].Title)

	_, err = svc.Search(f.as(f.demo), "")
	assert.ErrorIs(t, err, ErrValidation)
}
