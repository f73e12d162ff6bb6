package testimonials

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, testimonial Testimonial) (Testimonial, error)
	Featured(ctx context.Context, limit int) ([]Testimonial, error)
	RecentFeatured(ctx context.Context, limit int) ([]Testimonial, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	query := `INSERT INTO testimonials (customer_name, customer_avatar, rating, review_text, product_id, is_featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		testimonial.CustomerName, testimonial.CustomerAvatar, testimonial.Rating,
		testimonial.ReviewText, testimonial.ProductID, testimonial.IsFeatured, now,
	).Scan(&testimonial.ID)
	if err != nil {
		return Testimonial{}, err
	}
	testimonial.CreatedAt = now
	return testimonial, nil
}

// Featured orders by rating first so the strongest reviews lead the carousel.
func (r *repository) Featured(ctx context.Context, limit int) ([]Testimonial, error) {
	query := `SELECT id, customer_name, customer_avatar, rating, review_text, product_id, is_featured, created_at
		FROM testimonials WHERE is_featured = TRUE ORDER BY rating DESC, created_at DESC`
	return r.list(ctx, query, limit)
}

// RecentFeatured orders by recency; the landing aggregate wants the newest
// featured reviews rather than the highest rated.
func (r *repository) RecentFeatured(ctx context.Context, limit int) ([]Testimonial, error) {
	query := `SELECT id, customer_name, customer_avatar, rating, review_text, product_id, is_featured, created_at
		FROM testimonials WHERE is_featured = TRUE ORDER BY created_at DESC`
	return r.list(ctx, query, limit)
}

func (r *repository) list(ctx context.Context, query string, limit int) ([]Testimonial, error) {
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []Testimonial{}
	for rows.Next() {
		var t Testimonial
		err := rows.Scan(&t.ID, &t.CustomerName, &t.CustomerAvatar, &t.Rating,
			&t.ReviewText, &t.ProductID, &t.IsFeatured, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
