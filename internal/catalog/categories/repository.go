package categories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voltmart/voltmart/internal/platform/db"
	"github.com/voltmart/voltmart/internal/shared"
)

type Repository interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	query := `INSERT INTO categories (name, description, slug, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		category.Name, category.Description, category.Slug, category.ImageURL, now,
	).Scan(&category.ID)
	if err != nil {
		// Backstop for the pre-check; two concurrent creates can both pass it.
		if db.IsUniqueViolation(err) {
			return Category{}, fmt.Errorf("%w: category slug %q already exists", shared.ErrDuplicate, category.Slug)
		}
		return Category{}, err
	}
	category.CreatedAt = now
	return category, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	query := `SELECT id, name, description, slug, image_url, created_at FROM categories WHERE slug = $1`
	var c Category
	err := r.db.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.ImageURL, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	query := `SELECT id, name, description, slug, image_url, created_at FROM categories ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
