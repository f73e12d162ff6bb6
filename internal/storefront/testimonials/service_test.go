package testimonials

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltmart/voltmart/internal/shared"
)

type mockRepository struct {
	testimonials []Testimonial
	nextID       int64
	clock        time.Time
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1, clock: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *mockRepository) Create(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	testimonial.ID = m.nextID
	m.nextID++
	m.clock = m.clock.Add(time.Second)
	testimonial.CreatedAt = m.clock
	m.testimonials = append(m.testimonials, testimonial)
	return testimonial, nil
}

func (m *mockRepository) Featured(ctx context.Context, limit int) ([]Testimonial, error) {
	result := m.featured()
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rating != result[j].Rating {
			return result[i].Rating > result[j].Rating
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return capped(result, limit), nil
}

func (m *mockRepository) RecentFeatured(ctx context.Context, limit int) ([]Testimonial, error) {
	result := m.featured()
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return capped(result, limit), nil
}

func (m *mockRepository) featured() []Testimonial {
	result := []Testimonial{}
	for _, t := range m.testimonials {
		if t.IsFeatured {
			result = append(result, t)
		}
	}
	return result
}

func capped(in []Testimonial, limit int) []Testimonial {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func validRequest() CreateTestimonialRequest {
	return CreateTestimonialRequest{
		CustomerName: "Sarah Johnson",
		Rating:       5,
		ReviewText:   "Fast shipping, great phone.",
	}
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		req := validRequest()
		req.Rating = rating
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, shared.ErrValidation, "rating %d", rating)
	}

	for rating := 1; rating <= 5; rating++ {
		req := validRequest()
		req.Rating = rating
		created, err := svc.Create(ctx, req)
		require.NoError(t, err, "rating %d", rating)
		assert.Equal(t, rating, created.Rating)
	}
}

func TestCreateTestimonialDefaultsAndAdvisoryProduct(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	// product_id points at nothing; no existence check happens.
	missing := int64(99999)
	req := validRequest()
	req.ProductID = &missing

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.False(t, created.IsFeatured)
	require.NotNil(t, created.ProductID)
	assert.Equal(t, missing, *created.ProductID)
	assert.Nil(t, created.CustomerAvatar)
}

func TestCreateTestimonialAvatarMustBeURL(t *testing.T) {
	svc := NewService(newMockRepository())

	bad := "not-a-url"
	req := validRequest()
	req.CustomerAvatar = &bad
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestFeaturedOrdersByRatingThenRecency(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	tr := true
	for _, c := range []struct {
		name   string
		rating int
	}{
		{"old five", 5},
		{"three", 3},
		{"new five", 5},
	} {
		req := validRequest()
		req.CustomerName = c.name
		req.Rating = c.rating
		req.IsFeatured = &tr
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	featured, err := svc.Featured(ctx, 0)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "new five", featured[0].CustomerName)
	assert.Equal(t, "old five", featured[1].CustomerName)
	assert.Equal(t, "three", featured[2].CustomerName)
}
