package domain

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyDocument{
		Amount:   &m.Amount,
		Currency: m.Currency.String(),
	})
}
