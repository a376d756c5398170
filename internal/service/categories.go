package service

import (
	"context"

	"duitku/internal/models"
)

// CategoryRepository defines the persistence operations required by the
// category service.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// CategoryService implements category operations by delegating to a
// CategoryRepository.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService constructs a new CategoryService using the provided
// repository.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns every category.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

// Get returns a single category by id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new category and returns its id.
func (s *CategoryService) Create(ctx context.Context, name string) (int64, error) {
	return s.repo.Create(ctx, name)
}

// Update renames an existing category.
func (s *CategoryService) Update(ctx context.Context, id int64, name string) error {
	return s.repo.Update(ctx, id, name)
}

// Delete removes a category. Transactions referencing the category are
// left untouched; their category_id keeps its value.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
