package banners

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

// Create inserts unconditionally; multiple active banners may coexist and
// recency decides which one the storefront shows.
func (s *Service) Create(ctx context.Context, req CreateHeroBannerRequest) (HeroBanner, error) {
	if err := shared.ValidateInput(req); err != nil {
		return HeroBanner{}, err
	}

	created, err := s.repo.Create(ctx, HeroBanner{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		CTAText:         req.CTAText,
		CTALink:         req.CTALink,
		BackgroundImage: req.BackgroundImage,
		IsActive:        shared.BoolOrDefault(req.IsActive, shared.Defaults.BannerActive),
	})
	if err != nil {
		return HeroBanner{}, fmt.Errorf("create hero banner: %w", err)
	}
	return created, nil
}

func (s *Service) Active(ctx context.Context) (*HeroBanner, error) {
	return s.repo.Active(ctx)
}
