package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voltmart/voltmart/internal/shared"
)

type Repository interface {
	Subscribe(ctx context.Context, email, token string) (Subscription, error)
	ActiveSubscribers(ctx context.Context) ([]Subscription, error)
	Deactivate(ctx context.Context, token string) (Subscription, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// Subscribe inserts the email or reactivates an inactive row as one atomic
// statement, so concurrent subscribes for the same address cannot both slip
// past an existence check. The conditional update refuses rows that are
// already active; in that case no row comes back and the caller gets a
// conflict. The unsubscribe token is only written on first insert.
func (r *repository) Subscribe(ctx context.Context, email, token string) (Subscription, error) {
	query := `INSERT INTO newsletter_subscriptions (email, subscribed_at, is_active, unsubscribe_token)
		VALUES ($1, now(), TRUE, $2)
		ON CONFLICT (email) DO UPDATE
			SET is_active = TRUE, subscribed_at = now()
			WHERE newsletter_subscriptions.is_active = FALSE
		RETURNING id, email, subscribed_at, is_active, unsubscribe_token`
	var s Subscription
	err := r.db.QueryRow(ctx, query, email, token).Scan(
		&s.ID, &s.Email, &s.SubscribedAt, &s.IsActive, &s.UnsubscribeToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return Subscription{}, fmt.Errorf("%w: email is already subscribed to newsletter", shared.ErrDuplicate)
	}
	if err != nil {
		return Subscription{}, err
	}
	return s, nil
}

func (r *repository) ActiveSubscribers(ctx context.Context) ([]Subscription, error) {
	query := `SELECT id, email, subscribed_at, is_active, unsubscribe_token
		FROM newsletter_subscriptions WHERE is_active = TRUE ORDER BY subscribed_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := []Subscription{}
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.IsActive, &s.UnsubscribeToken); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

func (r *repository) Deactivate(ctx context.Context, token string) (Subscription, error) {
	query := `UPDATE newsletter_subscriptions SET is_active = FALSE
		WHERE unsubscribe_token = $1 AND is_active = TRUE
		RETURNING id, email, subscribed_at, is_active, unsubscribe_token`
	var s Subscription
	err := r.db.QueryRow(ctx, query, token).Scan(
		&s.ID, &s.Email, &s.SubscribedAt, &s.IsActive, &s.UnsubscribeToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return Subscription{}, fmt.Errorf("%w: no active subscription for token", shared.ErrNotFound)
	}
	if err != nil {
		return Subscription{}, err
	}
	return s, nil
}
