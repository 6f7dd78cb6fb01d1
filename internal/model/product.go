package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices are JSON numbers in responses and event payloads
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"imageUrl"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
