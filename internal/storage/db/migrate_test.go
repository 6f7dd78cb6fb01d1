package db_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

func TestMigrations(t *testing.T) {
	files, err := fs.Glob(db.Migrations(), "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"00001_create_products.sql",
		"00002_create_outbox_messages.sql",
	}, files)

	for _, name := range files {
		content, err := fs.ReadFile(db.Migrations(), name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(content), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(content), "-- +goose Down"), name)
	}

	products, err := fs.ReadFile(db.Migrations(), "00001_create_products.sql")
	require.NoError(t, err)
	assert.Contains(t, string(products), "name        VARCHAR(200)")
	assert.Contains(t, string(products), "description VARCHAR(1000)")
	assert.Contains(t, string(products), "NUMERIC(10, 2)")
	assert.Contains(t, string(products), "image_url   VARCHAR(500)")
}
