package testimonials

import (
	"context"
	"fmt"

	"github.com/voltmart/voltmart/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts unconditionally. product_id is advisory and never checked
// against the products table.
func (s *Service) Create(ctx context.Context, req CreateTestimonialRequest) (Testimonial, error) {
	if err := shared.ValidateInput(req); err != nil {
		return Testimonial{}, err
	}

	created, err := s.repo.Create(ctx, Testimonial{
		CustomerName:   req.CustomerName,
		CustomerAvatar: req.CustomerAvatar,
		Rating:         req.Rating,
		ReviewText:     req.ReviewText,
		ProductID:      req.ProductID,
		IsFeatured:     shared.BoolOrDefault(req.IsFeatured, shared.Defaults.TestimonialFeatured),
	})
	if err != nil {
		return Testimonial{}, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

func (s *Service) Featured(ctx context.Context, limit int) ([]Testimonial, error) {
	return s.repo.Featured(ctx, limit)
}
