package store

import "github.com/khaata/khaata/internal/model"

// reduce is the pure state-transition function. Adds prepend (newest-first
// for expenses and debts, matching reverse-chronological-by-add order);
// replaces overwrite in place by id; removes filter by id. An update whose
// id matches nothing leaves the state unchanged.
func reduce(s State, a Action) State {
	switch act := a.(type) {
	case setLoading:
		s.Loading = act.loading

	case setExpenses:
		s.Expenses = act.expenses
	case addExpense:
		s.Expenses = append([]model.Expense{act.expense}, s.Expenses...)
	case replaceExpense:
		for i := range s.Expenses {
			if s.Expenses[i].ID == act.expense.ID {
				s.Expenses[i] = act.expense
				break
			}
		}
	case removeExpense:
		s.Expenses = filterExpenses(s.Expenses, act.id)

	case setCategories:
		s.Categories = act.categories
	case addCategory:
		s.Categories = append(s.Categories, act.category)
	case removeCategory:
		kept := make([]model.Category, 0, len(s.Categories))
		for _, c := range s.Categories {
			if c.ID != act.id {
				kept = append(kept, c)
			}
		}
		s.Categories = kept

	case setOptions:
		s.setOptionList(act.kind, act.options)
	case addOption:
		s.setOptionList(act.kind, append(s.options(act.kind), act.option))
	case removeOption:
		kept := make([]model.PaymentOption, 0, len(s.options(act.kind)))
		for _, o := range s.options(act.kind) {
			if o.ID != act.id {
				kept = append(kept, o)
			}
		}
		s.setOptionList(act.kind, kept)

	case setDebts:
		s.Debts = act.debts
	case addDebt:
		s.Debts = append([]model.Debt{act.debt}, s.Debts...)
	case replaceDebt:
		for i := range s.Debts {
			if s.Debts[i].ID == act.debt.ID {
				s.Debts[i] = act.debt
				break
			}
		}
	case removeDebt:
		kept := make([]model.Debt, 0, len(s.Debts))
		for _, d := range s.Debts {
			if d.ID != act.id {
				kept = append(kept, d)
			}
		}
		s.Debts = kept

	case setBudget:
		s.Budget = act.budget
	case setCurrency:
		s.Currency = act.currency
	case setProfile:
		s.Profile = act.profile
	case setPreferences:
		s.Preferences = act.prefs
	}

	return s
}

func filterExpenses(expenses []model.Expense, id string) []model.Expense {
	kept := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept
}
