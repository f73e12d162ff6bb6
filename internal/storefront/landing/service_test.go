package landing

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/catalog/categories"
	"github.com/voltmart/voltmart/internal/catalog/products"
	"github.com/voltmart/voltmart/internal/storefront/banners"
	"github.com/voltmart/voltmart/internal/storefront/testimonials"
)

type fakeSources struct {
	banner       *banners.HeroBanner
	featured     []products.Product
	fresh        []products.Product
	categories   []categories.Category
	testimonials []testimonials.Testimonial

	bannerErr      error
	featuredErr    error
	testimonialErr error

	loads atomic.Int64
}

func (f *fakeSources) Active(ctx context.Context) (*banners.HeroBanner, error) {
	f.loads.Add(1)
	return f.banner, f.bannerErr
}

func (f *fakeSources) Featured(ctx context.Context, limit int) ([]products.Product, error) {
	if f.featuredErr != nil {
		return nil, f.featuredErr
	}
	return cappedProducts(f.featured, limit), nil
}

func (f *fakeSources) NewArrivals(ctx context.Context, limit int) ([]products.Product, error) {
	return cappedProducts(f.fresh, limit), nil
}

func (f *fakeSources) List(ctx context.Context) ([]categories.Category, error) {
	return f.categories, nil
}

func (f *fakeSources) RecentFeatured(ctx context.Context, limit int) ([]testimonials.Testimonial, error) {
	if f.testimonialErr != nil {
		return nil, f.testimonialErr
	}
	if limit > 0 && len(f.testimonials) > limit {
		return f.testimonials[:limit], nil
	}
	return f.testimonials, nil
}

func cappedProducts(in []products.Product, limit int) []products.Product {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func newService(src *fakeSources, cache *Cache) *Service {
	return NewService(src, src, src, src, cache)
}

func manyProducts(n int) []products.Product {
	out := make([]products.Product, n)
	for i := range out {
		out[i] = products.Product{ID: int64(i + 1), Name: "p", Price: 9.99}
	}
	return out
}

func manyTestimonials(n int) []testimonials.Testimonial {
	out := make([]testimonials.Testimonial, n)
	for i := range out {
		out[i] = testimonials.Testimonial{ID: int64(i + 1), Rating: 5}
	}
	return out
}

func TestDataAppliesSectionLimits(t *testing.T) {
	src := &fakeSources{
		banner:       &banners.HeroBanner{ID: 1, Title: "hero", IsActive: true},
		featured:     manyProducts(12),
		fresh:        manyProducts(9),
		categories:   []categories.Category{{ID: 1, Name: "Laptops", Slug: "laptops"}},
		testimonials: manyTestimonials(10),
	}
	svc := newService(src, nil)

	data, err := svc.Data(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.FeaturedProducts, 8)
	assert.Len(t, data.NewProducts, 4)
	assert.Len(t, data.Testimonials, 6)
	assert.Len(t, data.Categories, 1)
	require.NotNil(t, data.HeroBanner)
	assert.Equal(t, "hero", data.HeroBanner.Title)
}

func TestDataEmptyStoreYieldsEmptyShape(t *testing.T) {
	svc := newService(&fakeSources{}, nil)

	data, err := svc.Data(context.Background())
	require.NoError(t, err)

	assert.Nil(t, data.HeroBanner)
	assert.NotNil(t, data.FeaturedProducts)
	assert.Empty(t, data.FeaturedProducts)
	assert.NotNil(t, data.NewProducts)
	assert.Empty(t, data.NewProducts)
	assert.NotNil(t, data.Categories)
	assert.Empty(t, data.Categories)
	assert.NotNil(t, data.Testimonials)
	assert.Empty(t, data.Testimonials)
}

func TestDataFailsWholeWhenAnyReadFails(t *testing.T) {
	for name, src := range map[string]*fakeSources{
		"banner read fails":      {bannerErr: errors.New("store down")},
		"product read fails":     {featuredErr: errors.New("store down")},
		"testimonial read fails": {testimonialErr: errors.New("store down")},
	} {
		t.Run(name, func(t *testing.T) {
			svc := newService(src, nil)
			_, err := svc.Data(context.Background())
			require.Error(t, err)
		})
	}
}

func TestDataServedFromCacheOnSecondCall(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	src := &fakeSources{
		banner:   &banners.HeroBanner{ID: 1, Title: "hero"},
		featured: manyProducts(2),
	}
	svc := newService(src, NewCache(client, time.Minute))
	ctx := context.Background()

	first, err := svc.Data(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), src.loads.Load())

	second, err := svc.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), src.loads.Load(), "second call must not hit the store")
	assert.Equal(t, first, second)

	// Expiry forces a reload.
	mr.FastForward(2 * time.Minute)
	_, err = svc.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), src.loads.Load())
}

func TestDataDegradesWhenRedisIsGone(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	src := &fakeSources{featured: manyProducts(1)}
	svc := newService(src, NewCache(client, time.Minute))

	data, err := svc.Data(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.FeaturedProducts, 1)
}

func TestEmptyDataShape(t *testing.T) {
	data := EmptyData()
	assert.Nil(t, data.HeroBanner)
	assert.NotNil(t, data.FeaturedProducts)
	assert.NotNil(t, data.NewProducts)
	assert.NotNil(t, data.Categories)
	assert.NotNil(t, data.Testimonials)
}
