package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaata/khaata/internal/model"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy backend replaces every collection", func(t *testing.T) {
		transport := newFakeTransport()
		transport.expenses = []model.Expense{
			{ID: "e1", Title: "Rent", Amount: decimal.NewFromInt(12000), Type: model.ExpenseTypeOutcome},
		}
		transport.categories = []model.Category{
			{ID: "1", Title: "Food", Icon: "food", Color: "#FF0000"},
		}
		transport.options[model.OptionBank] = []model.PaymentOption{{ID: "b1", Name: "HDFC", Icon: "bank"}}
		transport.debts = []model.Debt{{
			ID: "d1", Type: model.DebtTypeReceive, Person: "Meera",
			OriginalAmount:  decimal.NewFromInt(500),
			RemainingAmount: decimal.NewFromInt(500),
			Status:          model.DebtStatusPending,
		}}
		transport.budget = decimal.NewFromInt(30000)
		transport.currency = "$"
		transport.profile = model.UserProfile{Name: "Asha", Email: "asha@example.com"}
		transport.prefs = model.Preferences{PushNotifications: false, BudgetAlerts: true}

		st, _ := newTestStore(transport)
		st.Load(ctx)

		state := st.State()
		assert.False(t, state.Loading)
		require.Len(t, state.Expenses, 1)
		assert.Equal(t, "Rent", state.Expenses[0].Title)
		require.Len(t, state.Categories, 1)
		assert.Equal(t, "Food", state.Categories[0].Title)
		require.Len(t, state.Banks, 1)
		require.Len(t, state.Debts, 1)
		assert.True(t, state.Budget.Equal(decimal.NewFromInt(30000)))
		assert.Equal(t, "$", state.Currency)
		assert.Equal(t, "Asha", state.Profile.Name)
		assert.False(t, state.Preferences.PushNotifications)
	})

	t.Run("expenses fetch failure falls back to snapshot", func(t *testing.T) {
		transport := newFakeTransport()
		transport.failExpenses = true

		snapshots := newMemSnapshots()
		cached := []model.Expense{
			{ID: "c1", Title: "Cached chai", Amount: decimal.NewFromInt(20),
				Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Type: model.ExpenseTypeOutcome},
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)
		require.NoError(t, snapshots.Put(ctx, "expenses", data))

		st := New(transport, snapshots)
		st.Load(ctx)

		state := st.State()
		assert.False(t, state.Loading)
		require.Len(t, state.Expenses, 1)
		assert.Equal(t, "Cached chai", state.Expenses[0].Title)
	})

	t.Run("expenses fetch failure with no snapshot starts empty", func(t *testing.T) {
		transport := newFakeTransport()
		transport.failExpenses = true

		st, _ := newTestStore(transport)
		st.Load(ctx)

		state := st.State()
		assert.False(t, state.Loading)
		assert.Empty(t, state.Expenses)
	})

	t.Run("corrupted snapshot starts empty rather than failing", func(t *testing.T) {
		transport := newFakeTransport()
		transport.failExpenses = true

		snapshots := newMemSnapshots()
		require.NoError(t, snapshots.Put(ctx, "expenses", []byte("{not json")))

		st := New(transport, snapshots)
		st.Load(ctx)

		state := st.State()
		assert.False(t, state.Loading)
		assert.Empty(t, state.Expenses)
	})

	t.Run("non-expense failures keep defaults without any fallback", func(t *testing.T) {
		transport := newFakeTransport()
		transport.failAll = true

		st, _ := newTestStore(transport)
		st.Load(ctx)

		state := st.State()
		assert.False(t, state.Loading)
		assert.Equal(t, model.DefaultCategories(), state.Categories)
		assert.Equal(t, "₹", state.Currency)
		assert.True(t, state.Budget.IsZero())
		assert.True(t, state.Preferences.PushNotifications)
		assert.True(t, state.Preferences.BudgetAlerts)
	})

	t.Run("empty remote category list keeps defaults", func(t *testing.T) {
		transport := newFakeTransport()
		st, _ := newTestStore(transport)
		st.Load(ctx)

		assert.Equal(t, model.DefaultCategories(), st.State().Categories)
	})
}
