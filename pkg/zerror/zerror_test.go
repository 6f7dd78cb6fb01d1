package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

var errNotFound = zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

func TestZError(t *testing.T) {
	t.Run("Should format without parent", func(t *testing.T) {
		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=product not found", errNotFound.Error())
		assert.Equal(t, zerror.StatusNotFound, errNotFound.Status())
		assert.Nil(t, errNotFound.Parent())
	})

	t.Run("Should keep matching after wrapping a parent", func(t *testing.T) {
		parent := errors.New("no rows in result set")
		err := fmt.Errorf("get product: %w", errNotFound.WrapParent(parent))

		assert.ErrorIs(t, err, errNotFound)
		assert.ErrorIs(t, err, parent)
		assert.Contains(t, err.Error(), "Parent=(no rows in result set)")

		var zErr zerror.ZError
		assert.ErrorAs(t, err, &zErr)
		assert.Equal(t, "PRODUCT_NOT_FOUND", zErr.Code())
	})

	t.Run("Should not match different codes", func(t *testing.T) {
		other := zerror.NewNotFound("ORDER_NOT_FOUND", "order not found")
		assert.NotErrorIs(t, other, errNotFound)
	})

	t.Run("Should override message", func(t *testing.T) {
		err := errNotFound.WithMsg("product %d not found", 42)
		assert.Equal(t, "product 42 not found", err.Msg())
		assert.ErrorIs(t, err, errNotFound)
	})

	t.Run("WrapParent with nil is a no-op", func(t *testing.T) {
		assert.Equal(t, errNotFound, errNotFound.WrapParent(nil))
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", zerror.StatusNotFound.String())
	assert.Equal(t, "UNKNOWN", zerror.Status(200).String())
}
