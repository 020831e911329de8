package store

import (
	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/model"
)

// Action is the closed union of state transitions. Every mutation of the
// aggregate state goes through dispatch with one of these; nothing else is
// permitted to touch the state record.
type Action interface {
	isAction()
}

type setLoading struct{ loading bool }

type setExpenses struct{ expenses []model.Expense }
type addExpense struct{ expense model.Expense }
type replaceExpense struct{ expense model.Expense }
type removeExpense struct{ id string }

type setCategories struct{ categories []model.Category }
type addCategory struct{ category model.Category }
type removeCategory struct{ id string }

type setOptions struct {
	kind    model.OptionKind
	options []model.PaymentOption
}
type addOption struct {
	kind   model.OptionKind
	option model.PaymentOption
}
type removeOption struct {
	kind model.OptionKind
	id   string
}

type setDebts struct{ debts []model.Debt }
type addDebt struct{ debt model.Debt }
type replaceDebt struct{ debt model.Debt }
type removeDebt struct{ id string }

type setBudget struct{ budget decimal.Decimal }
type setCurrency struct{ currency string }
type setProfile struct{ profile model.UserProfile }
type setPreferences struct{ prefs model.Preferences }

func (setLoading) isAction()     {}
func (setExpenses) isAction()    {}
func (addExpense) isAction()     {}
func (replaceExpense) isAction() {}
func (removeExpense) isAction()  {}
func (setCategories) isAction()  {}
func (addCategory) isAction()    {}
func (removeCategory) isAction() {}
func (setOptions) isAction()     {}
func (addOption) isAction()      {}
func (removeOption) isAction()   {}
func (setDebts) isAction()       {}
func (addDebt) isAction()        {}
func (replaceDebt) isAction()    {}
func (removeDebt) isAction()     {}
func (setBudget) isAction()      {}
func (setCurrency) isAction()    {}
func (setProfile) isAction()     {}
func (setPreferences) isAction() {}
