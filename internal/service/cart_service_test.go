package service_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/cartdao-demo/internal/domain"
	"github.com/nikolayk812/cartdao-demo/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productA = domain.Product{ID: 1, Name: "A", Price: domain.Money{Amount: decimal.RequireFromString("2.5")}}
	productB = domain.Product{ID: 2, Name: "B", Price: domain.Money{Amount: decimal.RequireFromString("1.5")}}
)

func newCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[int64]domain.Product{1: productA, 2: productB}}
}

func TestGetCart(t *testing.T) {
	lookupErr := errors.New("catalog unavailable")

	tests := []struct {
		name        string
		records     []domain.CartRecord
		catalogErr  error
		want        []domain.Product
		wantLookups []int64
		wantErr     error
		wantLog     bool
	}{
		{
			name:    "no rows: empty",
			records: nil,
			want:    []domain.Product{},
		},
		{
			name:        "single row: ok",
			records:     rows("[1,2]"),
			want:        []domain.Product{productA, productB},
			wantLookups: []int64{1, 2},
		},
		{
			name:        "rows are flattened in order with duplicates: ok",
			records:     rows("[2]", "[1,2]", "[]"),
			want:        []domain.Product{productB, productA, productB},
			wantLookups: []int64{2, 1, 2},
		},
		{
			name:    "malformed row: empty and logged",
			records: rows("not-json"),
			want:    []domain.Product{},
			wantLog: true,
		},
		{
			name:        "malformed second row drops earlier products: empty and logged",
			records:     rows("[1]", "null"),
			want:        []domain.Product{},
			wantLookups: []int64{1},
			wantLog:     true,
		},
		{
			name:        "null element in row: empty and logged",
			records:     rows("[1,null]"),
			want:        []domain.Product{},
			wantLog:     true,
		},
		{
			name:    "id past int64 range: empty and logged",
			records: rows("[9223372036854775808]"),
			want:    []domain.Product{},
			wantLog: true,
		},
		{
			name:        "unknown product: error",
			records:     rows("[1,99]"),
			wantLookups: []int64{1, 99},
			wantErr:     domain.ErrProductNotFound,
		},
		{
			name:        "lookup failure: error",
			records:     rows("[1]"),
			catalogErr:  lookupErr,
			wantLookups: []int64{1},
			wantErr:     lookupErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			username := gofakeit.Username()

			dao := &fakeDAO{records: tt.records}
			catalog := newCatalog()
			catalog.err = tt.catalogErr

			var logs bytes.Buffer
			svc := service.NewCart(dao, catalog, service.WithLogger(newLogger(&logs)))

			products, err := svc.GetCart(ctx, username)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, products)
				assert.Equal(t, tt.want, products)
			}

			assert.Equal(t, []daoCall{{op: "get", username: username}}, dao.calls)
			assert.Equal(t, tt.wantLookups, catalog.lookups)

			if tt.wantLog {
				assert.Contains(t, logs.String(), "error processing cart contents")
				assert.Contains(t, logs.String(), "username="+username)
				assert.Contains(t, logs.String(), "malformed cart contents")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestGetCart_DAOErrorPropagates(t *testing.T) {
	daoErr := errors.New("connection refused")
	dao := &fakeDAO{err: daoErr}
	catalog := newCatalog()

	svc := service.NewCart(dao, catalog)

	products, err := svc.GetCart(t.Context(), "alice")
	assert.Same(t, daoErr, err)
	assert.Nil(t, products)
	assert.Empty(t, catalog.lookups)
}

func TestGetCart_StrictContents(t *testing.T) {
	dao := &fakeDAO{records: rows("[1]", "not-json")}

	var logs bytes.Buffer
	svc := service.NewCart(dao, newCatalog(),
		service.WithStrictContents(),
		service.WithLogger(newLogger(&logs)))

	products, err := svc.GetCart(t.Context(), "alice")
	require.ErrorIs(t, err, domain.ErrMalformedContents)
	assert.Nil(t, products)
	assert.Empty(t, logs.String())
}

func TestCart(t *testing.T) {
	t.Run("assembled from rows: ok", func(t *testing.T) {
		dao := &fakeDAO{records: []domain.CartRecord{
			{ID: 11, Contents: "[1]"},
			{ID: 12, Contents: "[2,1]"},
		}}
		svc := service.NewCart(dao, newCatalog())

		cart, err := svc.Cart(t.Context(), "alice")
		require.NoError(t, err)

		assert.Equal(t, domain.Cart{
			ID:       11,
			Username: "alice",
			Contents: []domain.Product{productA, productB, productA},
			Cost:     6.5,
		}, cart)
	})

	t.Run("no rows: empty cart", func(t *testing.T) {
		svc := service.NewCart(&fakeDAO{}, newCatalog())

		cart, err := svc.Cart(t.Context(), "bob")
		require.NoError(t, err)

		assert.Equal(t, domain.Cart{Username: "bob", Contents: []domain.Product{}}, cart)
	})

	t.Run("lookup failure: error", func(t *testing.T) {
		svc := service.NewCart(&fakeDAO{records: rows("[42]")}, newCatalog())

		_, err := svc.Cart(t.Context(), "bob")
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestMutationsDelegate(t *testing.T) {
	daoErr := errors.New("dao failure")

	tests := []struct {
		name     string
		call     func(svc *service.CartService, dao *fakeDAO) error
		wantCall daoCall
	}{
		{
			name: "add to cart",
			call: func(svc *service.CartService, dao *fakeDAO) error {
				return svc.AddToCart(t.Context(), "alice", 7)
			},
			wantCall: daoCall{op: "add", username: "alice", productID: 7},
		},
		{
			name: "remove from cart",
			call: func(svc *service.CartService, dao *fakeDAO) error {
				return svc.RemoveFromCart(t.Context(), "alice", 7)
			},
			wantCall: daoCall{op: "remove", username: "alice", productID: 7},
		},
		{
			name: "delete cart",
			call: func(svc *service.CartService, dao *fakeDAO) error {
				return svc.DeleteCart(t.Context(), "alice")
			},
			wantCall: daoCall{op: "delete", username: "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+": ok", func(t *testing.T) {
			dao := &fakeDAO{}
			catalog := newCatalog()
			svc := service.NewCart(dao, catalog)

			require.NoError(t, tt.call(svc, dao))
			assert.Equal(t, []daoCall{tt.wantCall}, dao.calls)
			assert.Empty(t, catalog.lookups)
		})

		t.Run(tt.name+": error passes through", func(t *testing.T) {
			dao := &fakeDAO{err: daoErr}
			svc := service.NewCart(dao, newCatalog())

			err := tt.call(svc, dao)
			assert.Same(t, daoErr, err)
			assert.Equal(t, []daoCall{tt.wantCall}, dao.calls)
		})
	}
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}
