package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/model"
)

var errNetwork = fmt.Errorf("%w: connection refused", common.ErrTransport)

// fakeTransport is an in-memory stand-in for the backend. With failAll set,
// every call returns a transport error; failExpenses fails only the expense
// endpoints, for exercising the boot fallback path in isolation.
type fakeTransport struct {
	options      map[model.OptionKind][]model.PaymentOption
	currency     string
	calls        []string
	expenses     []model.Expense
	categories   []model.Category
	debts        []model.Debt
	profile      model.UserProfile
	prefs        model.Preferences
	budget       decimal.Decimal
	nextID       int
	mu           sync.Mutex
	failAll      bool
	failExpenses bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		options:  make(map[model.OptionKind][]model.PaymentOption),
		currency: "₹",
		prefs:    model.Preferences{PushNotifications: true, BudgetAlerts: true},
	}
}

func (f *fakeTransport) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.failAll {
		return errNetwork
	}
	return nil
}

func (f *fakeTransport) recordExpense(call string) error {
	if err := f.record(call); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failExpenses {
		return errNetwork
	}
	return nil
}

func (f *fakeTransport) assignID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return "srv-" + strconv.Itoa(f.nextID)
}

func (f *fakeTransport) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeTransport) GetExpenses(_ context.Context) ([]model.Expense, error) {
	if err := f.recordExpense("GetExpenses"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Expense(nil), f.expenses...), nil
}

func (f *fakeTransport) CreateExpense(_ context.Context, expense model.Expense) (*model.Expense, error) {
	if err := f.recordExpense("CreateExpense"); err != nil {
		return nil, err
	}
	if expense.ID == "" {
		expense.ID = f.assignID()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expenses = append(f.expenses, expense)
	return &expense, nil
}

func (f *fakeTransport) UpdateExpense(_ context.Context, expense model.Expense) (*model.Expense, error) {
	if err := f.recordExpense("UpdateExpense"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.expenses {
		if f.expenses[i].ID == expense.ID {
			f.expenses[i] = expense
		}
	}
	return &expense, nil
}

func (f *fakeTransport) DeleteExpense(_ context.Context, id string) error {
	if err := f.recordExpense("DeleteExpense"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.expenses[:0]
	for _, e := range f.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.expenses = kept
	return nil
}

func (f *fakeTransport) GetCategories(_ context.Context) ([]model.Category, error) {
	if err := f.record("GetCategories"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Category(nil), f.categories...), nil
}

func (f *fakeTransport) CreateCategory(_ context.Context, category model.Category) (*model.Category, error) {
	if err := f.record("CreateCategory"); err != nil {
		return nil, err
	}
	if category.ID == "" {
		category.ID = f.assignID()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, category)
	return &category, nil
}

func (f *fakeTransport) DeleteCategory(_ context.Context, id string) error {
	if err := f.record("DeleteCategory"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.categories[:0]
	for _, c := range f.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.categories = kept
	return nil
}

func (f *fakeTransport) GetOptions(_ context.Context, kind model.OptionKind) ([]model.PaymentOption, error) {
	if err := f.record("GetOptions/" + string(kind)); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.PaymentOption(nil), f.options[kind]...), nil
}

func (f *fakeTransport) CreateOption(_ context.Context, kind model.OptionKind, option model.PaymentOption) (*model.PaymentOption, error) {
	if err := f.record("CreateOption/" + string(kind)); err != nil {
		return nil, err
	}
	if option.ID == "" {
		option.ID = f.assignID()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.options[kind] = append(f.options[kind], option)
	return &option, nil
}

func (f *fakeTransport) DeleteOption(_ context.Context, kind model.OptionKind, id string) error {
	if err := f.record("DeleteOption/" + string(kind)); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.options[kind][:0]
	for _, o := range f.options[kind] {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	f.options[kind] = kept
	return nil
}

func (f *fakeTransport) GetDebts(_ context.Context) ([]model.Debt, error) {
	if err := f.record("GetDebts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Debt(nil), f.debts...), nil
}

func (f *fakeTransport) CreateDebt(_ context.Context, debt model.Debt) (*model.Debt, error) {
	if err := f.record("CreateDebt"); err != nil {
		return nil, err
	}
	if debt.ID == "" {
		debt.ID = f.assignID()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.debts = append(f.debts, debt)
	return &debt, nil
}

func (f *fakeTransport) UpdateDebt(_ context.Context, debt model.Debt) (*model.Debt, error) {
	if err := f.record("UpdateDebt"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.debts {
		if f.debts[i].ID == debt.ID {
			f.debts[i] = debt
		}
	}
	return &debt, nil
}

func (f *fakeTransport) DeleteDebt(_ context.Context, id string) error {
	if err := f.record("DeleteDebt"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.debts[:0]
	for _, d := range f.debts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	f.debts = kept
	return nil
}

func (f *fakeTransport) GetBudget(_ context.Context) (decimal.Decimal, error) {
	if err := f.record("GetBudget"); err != nil {
		return decimal.Zero, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.budget, nil
}

func (f *fakeTransport) PutBudget(_ context.Context, budget decimal.Decimal) (decimal.Decimal, error) {
	if err := f.record("PutBudget"); err != nil {
		return decimal.Zero, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.budget = budget
	return budget, nil
}

func (f *fakeTransport) GetCurrency(_ context.Context) (string, error) {
	if err := f.record("GetCurrency"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currency, nil
}

func (f *fakeTransport) PostCurrency(_ context.Context, currency string) (string, error) {
	if err := f.record("PostCurrency"); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currency = currency
	return currency, nil
}

func (f *fakeTransport) GetProfile(_ context.Context) (*model.UserProfile, error) {
	if err := f.record("GetProfile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	profile := f.profile
	return &profile, nil
}

func (f *fakeTransport) PutProfile(_ context.Context, profile model.UserProfile) (*model.UserProfile, error) {
	if err := f.record("PutProfile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = profile
	return &profile, nil
}

func (f *fakeTransport) GetPreferences(_ context.Context) (*model.Preferences, error) {
	if err := f.record("GetPreferences"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	prefs := f.prefs
	return &prefs, nil
}

func (f *fakeTransport) PutPreferences(_ context.Context, prefs model.Preferences) (*model.Preferences, error) {
	if err := f.record("PutPreferences"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs = prefs
	return &prefs, nil
}

// memSnapshots is a map-backed Snapshots implementation.
type memSnapshots struct {
	values  map[string][]byte
	mu      sync.Mutex
	failPut bool
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{values: make(map[string][]byte)}
}

func (m *memSnapshots) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: snapshot %q", common.ErrNotFound, key)
	}
	return value, nil
}

func (m *memSnapshots) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return fmt.Errorf("disk full")
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memSnapshots) Close() error { return nil }
