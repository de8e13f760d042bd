package port

import (
	"context"

	"github.com/nikolayk812/cartdao-demo/internal/domain"
)

type ProductCatalog interface {
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
}

type ProductRepository interface {
	ProductCatalog
	CreateProduct(ctx context.Context, product domain.Product) (int64, error)
}
