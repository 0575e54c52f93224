package store

import (
	"context"
	"testing"
	"time"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore builds a seeded store with a fixed clock.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(SeedConfig{}, logger.Nop())
	s.WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })
	return s
}

// ── Seed state ───────────────────────────────────────────────────────────────

func TestNewStore_SeedState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	demo, err := s.GetUserByOpenID(ctx, "demo_user")
	require.NoError(t, err)
	assert.Equal(t, int64(1), demo.ID)
	assert.Equal(t, "Demo User", demo.Name)
	assert.Equal(t, "demo@example.com", demo.Email)
	assert.Equal(t, models.RoleUser, demo.Role)

	categories, err := s.AllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "tech", categories[0].Slug)
	assert.Equal(t, "#3b82f6", categories[0].Color)
	assert.Equal(t, "life", categories[1].Slug)

	// The category counter starts past the seeded ids.
	id, err := s.CreateCategory(ctx, models.CreateCategoryRequest{Name: "财务", Slug: "finance"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestNewStore_CustomSeed(t *testing.T) {
	s := NewStore(SeedConfig{DemoOpenID: "alice_123", DemoName: "Alice"}, logger.Nop())

	demo, err := s.GetUserByOpenID(context.Background(), "alice_123")
	require.NoError(t, err)
	assert.Equal(t, "Alice", demo.Name)
	assert.Equal(t, "demo@example.com", demo.Email)
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestUpsertUser_CreateThenRefresh(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.UpsertUser(ctx, models.UpsertUser{OpenID: "wx_42", Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, models.RoleUser, created.Role, "role defaults on creation")

	// Empty fields of the payload must not wipe stored values.
	updated, err := s.UpsertUser(ctx, models.UpsertUser{OpenID: "wx_42", LoginMethod: "wechat"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, "bob@example.com", updated.Email)
	assert.Equal(t, "wechat", updated.LoginMethod)
}

func TestGetUserByOpenID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserByOpenID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Categories ───────────────────────────────────────────────────────────────

func TestCreateCategory_SlugCollision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCategory(ctx, models.CreateCategoryRequest{Name: "Tech again", Slug: "tech"})
	assert.ErrorIs(t, err, ErrSlugAlreadyTaken)
}

func TestCreateCategory_DefaultColor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateCategory(ctx, models.CreateCategoryRequest{Name: "旅行", Slug: "travel"})
	require.NoError(t, err)

	category, err := s.GetCategoryByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, defaultCategoryColor, category.Color)
}

// ── Id counters ──────────────────────────────────────────────────────────────

func TestIDCounters_NeverReused(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateDocument(ctx, 1, models.CreateDocumentRequest{Title: "a"})
	require.NoError(t, err)

	affected, err := s.DeleteDocument(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	second, err := s.CreateDocument(ctx, 1, models.CreateDocumentRequest{Title: "b"})
	require.NoError(t, err)
	assert.Greater(t, second, first, "ids stay monotonic across deletes")
}
