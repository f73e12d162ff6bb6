package landing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/voltmart/voltmart/internal/catalog/categories"
	"github.com/voltmart/voltmart/internal/catalog/products"
	"github.com/voltmart/voltmart/internal/storefront/banners"
	"github.com/voltmart/voltmart/internal/storefront/testimonials"
)

// Section limits for the first-page-load aggregate: an 8-slot featured
// grid, a 4-slot new-arrivals strip and a 6-slot testimonial carousel.
const (
	featuredProductLimit = 8
	newProductLimit      = 4
	testimonialLimit     = 6
)

const cacheKey = "landing:data"

// Data is the getLandingPageData response. Field names match the wire
// contract the storefront consumes.
type Data struct {
	HeroBanner       *banners.HeroBanner        `json:"heroBanner"`
	FeaturedProducts []products.Product         `json:"featuredProducts"`
	NewProducts      []products.Product         `json:"newProducts"`
	Categories       []categories.Category      `json:"categories"`
	Testimonials     []testimonials.Testimonial `json:"testimonials"`
}

// EmptyData is the degradation fallback: callers that cannot reach the API
// render this shape instead of crashing. The aggregate itself never returns
// partial results.
func EmptyData() Data {
	return Data{
		FeaturedProducts: []products.Product{},
		NewProducts:      []products.Product{},
		Categories:       []categories.Category{},
		Testimonials:     []testimonials.Testimonial{},
	}
}

// BannerSource yields the current hero banner, nil when none is active.
type BannerSource interface {
	Active(ctx context.Context) (*banners.HeroBanner, error)
}

// ProductSource yields the promoted product lists.
type ProductSource interface {
	Featured(ctx context.Context, limit int) ([]products.Product, error)
	NewArrivals(ctx context.Context, limit int) ([]products.Product, error)
}

// CategorySource yields all categories in name order.
type CategorySource interface {
	List(ctx context.Context) ([]categories.Category, error)
}

// TestimonialSource yields featured testimonials, newest first.
type TestimonialSource interface {
	RecentFeatured(ctx context.Context, limit int) ([]testimonials.Testimonial, error)
}

type Service struct {
	banners      BannerSource
	products     ProductSource
	categories   CategorySource
	testimonials TestimonialSource
	cache        *Cache
}

// NewService constructs the aggregate service. cache may be nil, in which
// case every call fans out to the store.
func NewService(b BannerSource, p ProductSource, c CategorySource, t TestimonialSource, cache *Cache) *Service {
	return &Service{banners: b, products: p, categories: c, testimonials: t, cache: cache}
}

// Data returns the landing-page aggregate, served from the short-TTL cache
// when one is configured.
func (s *Service) Data(ctx context.Context) (Data, error) {
	var data Data
	err := s.cache.Fetch(ctx, cacheKey, &data, func(ctx context.Context) (any, error) {
		return s.load(ctx)
	})
	if err != nil {
		return Data{}, err
	}
	return data, nil
}

// load fans out the five reads concurrently. Each goroutine writes a
// distinct field, so the join needs no locking; any failure cancels the
// group and fails the whole aggregate.
func (s *Service) load(ctx context.Context) (Data, error) {
	data := EmptyData()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		banner, err := s.banners.Active(ctx)
		if err != nil {
			return fmt.Errorf("landing: hero banner: %w", err)
		}
		data.HeroBanner = banner
		return nil
	})
	g.Go(func() error {
		featured, err := s.products.Featured(ctx, featuredProductLimit)
		if err != nil {
			return fmt.Errorf("landing: featured products: %w", err)
		}
		data.FeaturedProducts = featured
		return nil
	})
	g.Go(func() error {
		fresh, err := s.products.NewArrivals(ctx, newProductLimit)
		if err != nil {
			return fmt.Errorf("landing: new products: %w", err)
		}
		data.NewProducts = fresh
		return nil
	})
	g.Go(func() error {
		cats, err := s.categories.List(ctx)
		if err != nil {
			return fmt.Errorf("landing: categories: %w", err)
		}
		data.Categories = cats
		return nil
	})
	g.Go(func() error {
		reviews, err := s.testimonials.RecentFeatured(ctx, testimonialLimit)
		if err != nil {
			return fmt.Errorf("landing: testimonials: %w", err)
		}
		data.Testimonials = reviews
		return nil
	})

	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	// Sources may hand back nil slices; the wire contract promises [] for
	// empty sections, so coalesce before the aggregate leaves this package.
	if data.FeaturedProducts == nil {
		data.FeaturedProducts = []products.Product{}
	}
	if data.NewProducts == nil {
		data.NewProducts = []products.Product{}
	}
	if data.Categories == nil {
		data.Categories = []categories.Category{}
	}
	if data.Testimonials == nil {
		data.Testimonials = []testimonials.Testimonial{}
	}
	return data, nil
}
