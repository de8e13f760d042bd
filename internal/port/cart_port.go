package port

import (
	"context"

	"github.com/nikolayk812/cartdao-demo/internal/domain"
)

type CartDAO interface {
	GetCart(ctx context.Context, username string) ([]domain.CartRecord, error)
	AddToCart(ctx context.Context, username string, productID int64) error
	RemoveFromCart(ctx context.Context, username string, productID int64) error
	DeleteCart(ctx context.Context, username string) error
}
