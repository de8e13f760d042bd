package domain

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartDocument struct {
	ID       *int64             `json:"id"`
	Username *string            `json:"username"`
	Contents *[]json.RawMessage `json:"contents"`
	Cost     *float64           `json:"cost"`
}

type productDocument struct {
	ID          *int64         `json:"id"`
	Name        *string        `json:"name"`
	Description string         `json:"description"`
	Price       *moneyDocument `json:"price"`
}

type moneyDocument struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency string           `json:"currency"`
}

// LoadCart builds a Cart from its JSON document. The keys id, username,
// contents and cost are required; every contents element goes through
// LoadProduct. Failures wrap ErrInvalidCart.
func LoadCart(data []byte) (Cart, error) {
	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Cart{}, fmt.Errorf("%w: %w", ErrInvalidCart, err)
	}

	switch {
	case doc.ID == nil:
		return Cart{}, missingKey("id")
	case doc.Username == nil:
		return Cart{}, missingKey("username")
	case doc.Contents == nil:
		return Cart{}, missingKey("contents")
	case doc.Cost == nil:
		return Cart{}, missingKey("cost")
	}

	contents := make([]Product, 0, len(*doc.Contents))
	for i, raw := range *doc.Contents {
		product, err := LoadProduct(raw)
		if err != nil {
			return Cart{}, fmt.Errorf("contents[%d]: %w", i, err)
		}

		contents = append(contents, product)
	}

	return Cart{
		ID:       *doc.ID,
		Username: *doc.Username,
		Contents: contents,
		Cost:     *doc.Cost,
	}, nil
}

// LoadProduct builds a Product from a flat JSON object. id and name are
// required, unknown keys are rejected.
func LoadProduct(data []byte) (Product, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc productDocument
	if err := dec.Decode(&doc); err != nil {
		return Product{}, fmt.Errorf("%w: %w", ErrInvalidCart, err)
	}

	switch {
	case doc.ID == nil:
		return Product{}, missingKey("id")
	case doc.Name == nil:
		return Product{}, missingKey("name")
	}

	product := Product{
		ID:          *doc.ID,
		Name:        *doc.Name,
		Description: doc.Description,
	}

	if doc.Price != nil {
		price, err := doc.Price.toDomain()
		if err != nil {
			return Product{}, err
		}

		product.Price = price
	}

	return product, nil
}

func (d moneyDocument) toDomain() (Money, error) {
	if d.Amount == nil {
		return Money{}, missingKey("price.amount")
	}

	parsedCurrency, err := currency.ParseISO(d.Currency)
	if err != nil {
		return Money{}, fmt.Errorf("%w: currency[%s] is not valid: %w", ErrInvalidCart, d.Currency, err)
	}

	return Money{Amount: *d.Amount, Currency: parsedCurrency}, nil
}

func missingKey(key string) error {
	return fmt.Errorf("%w: missing key %q", ErrInvalidCart, key)
}
