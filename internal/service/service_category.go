package service

import (
	"context"
	"unicode/utf8"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/models"
)

const maxNameLength = 100

type categoryService struct {
	categories store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categories: categories, logger: logger}
}

func (c *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return c.categories.AllCategories(ctx)
}

func (c *categoryService) GetByID(ctx context.Context, id int64) (models.Category, error) {
	return c.categories.GetCategoryByID(ctx, id)
}

func (c *categoryService) Create(ctx context.Context, data models.CreateCategoryRequest) (models.InsertResult, error) {
	if data.Name == "" || utf8.RuneCountInString(data.Name) > maxNameLength {
		return models.InsertResult{}, validationError("name must be 1..%d characters", maxNameLength)
	}
	if data.Slug == "" || utf8.RuneCountInString(data.Slug) > maxNameLength {
		return models.InsertResult{}, validationError("slug must be 1..%d characters", maxNameLength)
	}

	caller, err := callerFromContext(ctx)
	if err != nil {
		return models.InsertResult{}, err
	}
	if err = adminOnly(caller); err != nil {
		return models.InsertResult{}, err
	}

	id, err := c.categories.CreateCategory(ctx, data)
	if err != nil {
		return models.InsertResult{}, err
	}
	c.logger.Info().Int64("categoryId", id).Str("slug", data.Slug).Msg("category created")

	return models.InsertResult{InsertID: id}, nil
}
