package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nikolayk812/cartdao-demo/internal/domain"
	"github.com/nikolayk812/cartdao-demo/internal/port"
)

// CartService is the cart operations facade. It keeps no state between
// calls: persistence goes to the CartDAO and product resolution to the
// ProductCatalog.
type CartService struct {
	dao      port.CartDAO
	products port.ProductCatalog
	logger   *slog.Logger
	strict   bool
}

type Option func(*CartService)

func WithLogger(logger *slog.Logger) Option {
	return func(s *CartService) {
		s.logger = logger
	}
}

// WithStrictContents makes GetCart and Cart return ErrMalformedContents
// instead of an empty cart.
func WithStrictContents() Option {
	return func(s *CartService) {
		s.strict = true
	}
}

func NewCart(dao port.CartDAO, products port.ProductCatalog, opts ...Option) *CartService {
	s := &CartService{
		dao:      dao,
		products: products,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetCart resolves every product id stored in the user's cart rows, in row
// order. A cart with malformed contents is reported as empty and logged,
// unless the service is strict.
func (s *CartService) GetCart(ctx context.Context, username string) ([]domain.Product, error) {
	products, _, err := s.resolve(ctx, username)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Cart assembles the Cart entity: the id of the first row, resolved
// contents and their summed cost.
func (s *CartService) Cart(ctx context.Context, username string) (domain.Cart, error) {
	products, records, err := s.resolve(ctx, username)
	if err != nil {
		return domain.Cart{}, err
	}

	cart := domain.Cart{
		Username: username,
		Contents: products,
		Cost:     domain.TotalCost(products),
	}
	if len(records) > 0 {
		cart.ID = records[0].ID
	}

	return cart, nil
}

func (s *CartService) AddToCart(ctx context.Context, username string, productID int64) error {
	return s.dao.AddToCart(ctx, username, productID)
}

func (s *CartService) RemoveFromCart(ctx context.Context, username string, productID int64) error {
	return s.dao.RemoveFromCart(ctx, username, productID)
}

func (s *CartService) DeleteCart(ctx context.Context, username string) error {
	return s.dao.DeleteCart(ctx, username)
}

func (s *CartService) resolve(ctx context.Context, username string) ([]domain.Product, []domain.CartRecord, error) {
	records, err := s.dao.GetCart(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	products := []domain.Product{}

	for _, record := range records {
		ids, err := domain.ParseContents(record.Contents)
		if err != nil {
			if !errors.Is(err, domain.ErrMalformedContents) || s.strict {
				return nil, nil, err
			}

			s.logger.ErrorContext(ctx, "error processing cart contents",
				slog.String("username", username),
				slog.Int64("record_id", record.ID),
				slog.Any("err", err))

			return []domain.Product{}, records, nil
		}

		for _, id := range ids {
			product, err := s.products.GetProduct(ctx, id)
			if err != nil {
				return nil, nil, err
			}

			products = append(products, product)
		}
	}

	return products, records, nil
}
