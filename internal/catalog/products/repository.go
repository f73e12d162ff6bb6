package products

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, price, original_price, image_url, category, is_featured, is_new, stock_quantity, created_at, updated_at`

type Repository interface {
	Create(ctx context.Context, product Product) (Product, error)
	Featured(ctx context.Context, limit int) ([]Product, error)
	NewArrivals(ctx context.Context, limit int) ([]Product, error)
	ByCategory(ctx context.Context, category string) ([]Product, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (name, description, price, original_price, image_url, category, is_featured, is_new, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.OriginalPrice,
		product.ImageURL, product.Category, product.IsFeatured, product.IsNew,
		product.StockQuantity, now, now,
	).Scan(&product.ID)
	if err != nil {
		return Product{}, err
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}

func (r *repository) Featured(ctx context.Context, limit int) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_featured = TRUE ORDER BY created_at DESC`
	return r.list(ctx, query, limit)
}

func (r *repository) NewArrivals(ctx context.Context, limit int) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_new = TRUE ORDER BY created_at DESC`
	return r.list(ctx, query, limit)
}

// ByCategory matches the stored category exactly, case sensitive. Unknown
// categories yield an empty slice, not an error.
func (r *repository) ByCategory(ctx context.Context, category string) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *repository) list(ctx context.Context, query string, limit int) ([]Product, error) {
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		var p Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
			&p.ImageURL, &p.Category, &p.IsFeatured, &p.IsNew, &p.StockQuantity,
			&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
