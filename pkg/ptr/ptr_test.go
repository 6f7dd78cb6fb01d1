package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

func TestNilIfZero(t *testing.T) {
	assert.Nil(t, ptr.NilIfZero(""))
	assert.Nil(t, ptr.NilIfZero(0))
	assert.Equal(t, "x", *ptr.NilIfZero("x"))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "def", ptr.Deref(nil, "def"))
	assert.Equal(t, 3, ptr.Deref(ptr.New(3), 0))
}
