package banners

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, banner HeroBanner) (HeroBanner, error)
	Active(ctx context.Context) (*HeroBanner, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, banner HeroBanner) (HeroBanner, error) {
	query := `INSERT INTO hero_banners (title, subtitle, description, cta_text, cta_link, background_image, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		banner.Title, banner.Subtitle, banner.Description, banner.CTAText,
		banner.CTALink, banner.BackgroundImage, banner.IsActive, now, now,
	).Scan(&banner.ID)
	if err != nil {
		return HeroBanner{}, err
	}
	banner.CreatedAt = now
	banner.UpdatedAt = now
	return banner, nil
}

// Active returns the most recently updated active banner, or nil when no
// banner is active.
func (r *repository) Active(ctx context.Context) (*HeroBanner, error) {
	query := `SELECT id, title, subtitle, description, cta_text, cta_link, background_image, is_active, created_at, updated_at
		FROM hero_banners WHERE is_active = TRUE ORDER BY updated_at DESC LIMIT 1`
	var b HeroBanner
	err := r.db.QueryRow(ctx, query).Scan(&b.ID, &b.Title, &b.Subtitle, &b.Description,
		&b.CTAText, &b.CTALink, &b.BackgroundImage, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
