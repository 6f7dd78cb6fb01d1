package model_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

func TestProductPriceMarshalsAsNumber(t *testing.T) {
	p := model.Product{ID: 1, Name: "Desk Lamp", Price: decimal.RequireFromString("19.99")}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price":19.99`)
	assert.Contains(t, string(b), `"imageUrl":null`)
}
