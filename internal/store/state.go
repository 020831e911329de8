// Package store implements the synchronized entity store: an in-memory
// mirror of the remote collections that applies mutations optimistically.
// Local state is the source of truth for the current session; remote
// failures are logged, not surfaced, and never trigger a rollback.
package store

import (
	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/model"
)

// State is the aggregate record mirroring every remote collection plus the
// scalar fields. Expenses and debts are kept newest-first; categories and
// option lists keep insertion order.
type State struct {
	Currency       string
	Expenses       []model.Expense
	Categories     []model.Category
	PaymentMethods []model.PaymentOption
	Banks          []model.PaymentOption
	UpiApps        []model.PaymentOption
	Debts          []model.Debt
	Budget         decimal.Decimal
	Profile        model.UserProfile
	Preferences    model.Preferences
	Loading        bool
}

// defaultState seeds the values used until (or in place of) a successful
// remote fetch.
func defaultState() State {
	return State{
		Categories: model.DefaultCategories(),
		Budget:     decimal.Zero,
		Currency:   "₹",
		Preferences: model.Preferences{
			PushNotifications: true,
			BudgetAlerts:      true,
		},
		Loading: true,
	}
}

// clone deep-copies the slices so callers can't mutate the store's state.
func (s State) clone() State {
	out := s
	out.Expenses = append([]model.Expense(nil), s.Expenses...)
	out.Categories = append([]model.Category(nil), s.Categories...)
	out.PaymentMethods = append([]model.PaymentOption(nil), s.PaymentMethods...)
	out.Banks = append([]model.PaymentOption(nil), s.Banks...)
	out.UpiApps = append([]model.PaymentOption(nil), s.UpiApps...)
	out.Debts = append([]model.Debt(nil), s.Debts...)
	return out
}

// options returns the option list for kind. Unknown kinds return nil.
func (s *State) options(kind model.OptionKind) []model.PaymentOption {
	switch kind {
	case model.OptionPaymentMethod:
		return s.PaymentMethods
	case model.OptionBank:
		return s.Banks
	case model.OptionUpiApp:
		return s.UpiApps
	}
	return nil
}

// setOptionList stores the option list for kind.
func (s *State) setOptionList(kind model.OptionKind, options []model.PaymentOption) {
	switch kind {
	case model.OptionPaymentMethod:
		s.PaymentMethods = options
	case model.OptionBank:
		s.Banks = options
	case model.OptionUpiApp:
		s.UpiApps = options
	}
}
