package repository

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericConversion(t *testing.T) {
	for _, s := range []string{"0", "12.5", "12.50", "99999999.99", "0.01"} {
		t.Run(s, func(t *testing.T) {
			in := decimal.RequireFromString(s)

			out, err := numericToDecimal(decimalToNumeric(in))
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "want %s got %s", in, out)
		})
	}
}

func TestNumericToDecimal(t *testing.T) {
	t.Run("Should read database scale", func(t *testing.T) {
		d, err := numericToDecimal(pgtype.Numeric{Int: big.NewInt(1250), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "12.50", d.StringFixed(2))
	})

	t.Run("Should reject null", func(t *testing.T) {
		_, err := numericToDecimal(pgtype.Numeric{})
		assert.Error(t, err)
	})

	t.Run("Should reject NaN and infinity", func(t *testing.T) {
		_, err := numericToDecimal(pgtype.Numeric{NaN: true, Valid: true})
		assert.Error(t, err)

		_, err = numericToDecimal(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
		assert.Error(t, err)
	})
}
