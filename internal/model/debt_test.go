package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaata/khaata/internal/common"
)

func newTestDebt() Debt {
	return Debt{
		ID:              "d1",
		Type:            DebtTypeOwe,
		Person:          "Ravi",
		Reason:          "lunch",
		Status:          DebtStatusPending,
		OriginalAmount:  decimal.NewFromInt(1000),
		RemainingAmount: decimal.NewFromInt(1000),
	}
}

func TestDebtSettle(t *testing.T) {
	t.Run("partial payment decrements remaining", func(t *testing.T) {
		d := newTestDebt()
		require.NoError(t, d.Settle(decimal.NewFromInt(300)))
		assert.True(t, d.RemainingAmount.Equal(decimal.NewFromInt(700)))
		assert.Equal(t, DebtStatusPending, d.Status)
	})

	t.Run("full payment settles the entry", func(t *testing.T) {
		d := newTestDebt()
		require.NoError(t, d.Settle(decimal.NewFromInt(1000)))
		assert.True(t, d.RemainingAmount.IsZero())
		assert.Equal(t, DebtStatusSettled, d.Status)
	})

	t.Run("overpayment is rejected", func(t *testing.T) {
		d := newTestDebt()
		err := d.Settle(decimal.NewFromInt(1001))
		require.ErrorIs(t, err, common.ErrInvalidAmount)
		assert.True(t, d.RemainingAmount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("non-positive payment is rejected", func(t *testing.T) {
		d := newTestDebt()
		assert.ErrorIs(t, d.Settle(decimal.Zero), common.ErrInvalidAmount)
		assert.ErrorIs(t, d.Settle(decimal.NewFromInt(-5)), common.ErrInvalidAmount)
	})
}

func TestDebtValidate(t *testing.T) {
	t.Run("valid entry passes", func(t *testing.T) {
		d := newTestDebt()
		assert.NoError(t, d.Validate())
	})

	t.Run("remaining above original fails", func(t *testing.T) {
		d := newTestDebt()
		d.RemainingAmount = decimal.NewFromInt(1500)
		assert.ErrorIs(t, d.Validate(), common.ErrInvalidAmount)
	})

	t.Run("negative remaining fails", func(t *testing.T) {
		d := newTestDebt()
		d.RemainingAmount = decimal.NewFromInt(-1)
		assert.ErrorIs(t, d.Validate(), common.ErrInvalidAmount)
	})

	t.Run("missing person fails", func(t *testing.T) {
		d := newTestDebt()
		d.Person = ""
		assert.Error(t, d.Validate())
	})

	t.Run("unknown type fails", func(t *testing.T) {
		d := newTestDebt()
		d.Type = DebtType("borrow")
		assert.Error(t, d.Validate())
	})
}
