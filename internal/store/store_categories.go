package store

import (
	"context"
	"sort"

	"github.com/dkurbatov/lifehub/models"
)

const defaultCategoryColor = "#ef4444"

// AllCategories returns every category ordered by id ascending (seed order
// first).
func (s *Store) AllCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// GetCategoryByID returns the category with the given id or ErrNotFound.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}

	return c, nil
}

// CreateCategory inserts a new category. The slug must be unique across all
// categories; a collision returns ErrSlugAlreadyTaken. Color falls back to
// the default when empty.
func (s *Store) CreateCategory(ctx context.Context, data models.CreateCategoryRequest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.categoriesBySlug[data.Slug]; taken {
		return 0, ErrSlugAlreadyTaken
	}

	color := data.Color
	if color == "" {
		color = defaultCategoryColor
	}

	s.categorySeq++
	category := models.Category{
		ID:          s.categorySeq,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Color:       color,
		CreatedAt:   s.now(),
	}
	s.categories[category.ID] = category
	s.categoriesBySlug[category.Slug] = category.ID

	return category.ID, nil
}
