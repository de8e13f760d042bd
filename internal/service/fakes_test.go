package service_test

import (
	"context"

	"github.com/nikolayk812/cartdao-demo/internal/domain"
)

type daoCall struct {
	op        string
	username  string
	productID int64
}

type fakeDAO struct {
	records []domain.CartRecord
	err     error
	calls   []daoCall
}

func (f *fakeDAO) GetCart(_ context.Context, username string) ([]domain.CartRecord, error) {
	f.calls = append(f.calls, daoCall{op: "get", username: username})
	return f.records, f.err
}

func (f *fakeDAO) AddToCart(_ context.Context, username string, productID int64) error {
	f.calls = append(f.calls, daoCall{op: "add", username: username, productID: productID})
	return f.err
}

func (f *fakeDAO) RemoveFromCart(_ context.Context, username string, productID int64) error {
	f.calls = append(f.calls, daoCall{op: "remove", username: username, productID: productID})
	return f.err
}

func (f *fakeDAO) DeleteCart(_ context.Context, username string) error {
	f.calls = append(f.calls, daoCall{op: "delete", username: username})
	return f.err
}

type fakeCatalog struct {
	products map[int64]domain.Product
	err      error
	lookups  []int64
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int64) (domain.Product, error) {
	f.lookups = append(f.lookups, id)
	if f.err != nil {
		return domain.Product{}, f.err
	}

	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	return product, nil
}

func rows(contents ...string) []domain.CartRecord {
	records := make([]domain.CartRecord, 0, len(contents))
	for i, c := range contents {
		records = append(records, domain.CartRecord{ID: int64(i + 1), Contents: c})
	}
	return records
}
