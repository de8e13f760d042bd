package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartdao-demo/internal/db"
	"github.com/nikolayk812/cartdao-demo/internal/domain"
	"github.com/nikolayk812/cartdao-demo/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartDAO {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartDAO {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, username string) ([]domain.CartRecord, error) {
	if username == "" {
		return nil, fmt.Errorf("username is empty")
	}

	rows, err := r.q.GetCartDetails(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("q.GetCartDetails: %w", err)
	}

	return mapCartDetailsToDomain(rows), nil
}

// AddToCart appends productID to the newest row of the user's cart, creating
// the first row when the cart does not exist yet.
func (r *cartRepository) AddToCart(ctx context.Context, username string, productID int64) error {
	if username == "" {
		return fmt.Errorf("username is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		rows, err := q.GetCartDetailsForUpdate(ctx, username)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.GetCartDetailsForUpdate: %w", err)
		}

		if len(rows) == 0 {
			err = q.InsertCartDetail(ctx, db.InsertCartDetailParams{
				Username: username,
				Contents: domain.EncodeContents([]int64{productID}),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.InsertCartDetail: %w", err)
			}

			return struct{}{}, nil
		}

		last := rows[len(rows)-1]

		ids, err := domain.ParseContents(last.Contents)
		if err != nil {
			return struct{}{}, fmt.Errorf("cart_details[%d]: %w", last.ID, err)
		}

		err = q.UpdateCartDetailContents(ctx, db.UpdateCartDetailContentsParams{
			ID:       last.ID,
			Contents: domain.EncodeContents(append(ids, productID)),
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.UpdateCartDetailContents: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

// RemoveFromCart drops the first occurrence of productID, scanning rows in
// id order. A product that is not in the cart is ignored.
func (r *cartRepository) RemoveFromCart(ctx context.Context, username string, productID int64) error {
	if username == "" {
		return fmt.Errorf("username is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		rows, err := q.GetCartDetailsForUpdate(ctx, username)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.GetCartDetailsForUpdate: %w", err)
		}

		for _, row := range rows {
			ids, err := domain.ParseContents(row.Contents)
			if err != nil {
				return struct{}{}, fmt.Errorf("cart_details[%d]: %w", row.ID, err)
			}

			idx := slices.Index(ids, productID)
			if idx < 0 {
				continue
			}

			err = q.UpdateCartDetailContents(ctx, db.UpdateCartDetailContentsParams{
				ID:       row.ID,
				Contents: domain.EncodeContents(slices.Delete(ids, idx, idx+1)),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.UpdateCartDetailContents: %w", err)
			}

			return struct{}{}, nil
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) DeleteCart(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username is empty")
	}

	if _, err := r.q.DeleteCartDetails(ctx, username); err != nil {
		return fmt.Errorf("q.DeleteCartDetails: %w", err)
	}

	return nil
}

func mapCartDetailToDomain(row db.CartDetail) domain.CartRecord {
	return domain.CartRecord{
		ID:        row.ID,
		Username:  row.Username,
		Contents:  row.Contents,
		CreatedAt: row.CreatedAt,
	}
}

func mapCartDetailsToDomain(rows []db.CartDetail) []domain.CartRecord {
	records := make([]domain.CartRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, mapCartDetailToDomain(row))
	}

	return records
}
