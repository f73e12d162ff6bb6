package products

import (
	"context"
	"fmt"
	"math"

	"github.com/voltmart/voltmart/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := shared.ValidateInput(req); err != nil {
		return Product{}, err
	}

	product := Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         roundMoney(req.Price),
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		IsFeatured:    shared.BoolOrDefault(req.IsFeatured, shared.Defaults.ProductFeatured),
		IsNew:         shared.BoolOrDefault(req.IsNew, shared.Defaults.ProductNew),
		StockQuantity: req.StockQuantity,
	}
	if req.OriginalPrice != nil {
		op := roundMoney(*req.OriginalPrice)
		product.OriginalPrice = &op
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

func (s *Service) Featured(ctx context.Context, limit int) ([]Product, error) {
	return s.repo.Featured(ctx, limit)
}

func (s *Service) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	return s.repo.NewArrivals(ctx, limit)
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ByCategory(ctx, category)
}

// roundMoney mirrors the numeric(10,2) storage precision so callers see the
// same value the database keeps (123.456789 becomes 123.46).
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
