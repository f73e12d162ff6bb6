package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/voltmart/voltmart/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	if err := shared.ValidateInput(req); err != nil {
		return Category{}, err
	}

	existing, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return Category{}, fmt.Errorf("check existing category: %w", err)
	}
	if existing != nil {
		return Category{}, fmt.Errorf("%w: category slug %q already exists", shared.ErrDuplicate, req.Slug)
	}

	created, err := s.repo.Create(ctx, Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}
