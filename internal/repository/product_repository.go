package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartdao-demo/internal/db"
	"github.com/nikolayk812/cartdao-demo/internal/domain"
	"github.com/nikolayk812/cartdao-demo/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (int64, error) {
	if product.Name == "" {
		return 0, fmt.Errorf("product name is empty")
	}

	id, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		Name:          product.Name,
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
	})
	if err != nil {
		return 0, fmt.Errorf("q.CreateProduct: %w", err)
	}

	return id, nil
}

func mapProductToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
	}, nil
}
