package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/model"
	"github.com/khaata/khaata/internal/service"
)

// Snapshot keys, one per cached collection.
const (
	snapshotKeyExpenses = "expenses"
	snapshotKeyDebts    = "debts"
)

// Store owns the aggregate state and is its only mutation path. Dispatches
// are serialized by a mutex; concurrent mutations to the same entity resolve
// last-writer-wins with no version check, which callers must treat as
// observed behavior rather than a guarantee.
type Store struct {
	transport service.Transport
	snapshots service.Snapshots
	state     State
	lastLocal int64
	mu        sync.Mutex
}

// New creates a store over the given collaborators. Call Load before reading
// state.
func New(transport service.Transport, snapshots service.Snapshots) *Store {
	return &Store{
		transport: transport,
		snapshots: snapshots,
		state:     defaultState(),
	}
}

// State returns a copy of the current aggregate state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
}

// nextLocalID synthesizes a session-unique identifier from the current
// timestamp, for adds whose remote write failed without echoing an id.
func (s *Store) nextLocalID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixNano()
	if id <= s.lastLocal {
		id = s.lastLocal + 1
	}
	s.lastLocal = id
	return strconv.FormatInt(id, 10)
}

// Load runs the initialization protocol: independent fetches for every
// collection and scalar, with no ordering dependency and no automatic
// retries. A failed expenses fetch falls back to the local snapshot; every
// other failure leaves the default value in place and is only logged. The
// loading flag clears once the expenses path resolves, success or not.
func (s *Store) Load(ctx context.Context) {
	s.dispatch(setLoading{loading: true})

	var wg sync.WaitGroup
	fetch := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	fetch(func() { s.loadExpenses(ctx) })
	fetch(func() { s.loadDebts(ctx) })

	fetch(func() {
		if categories, err := s.transport.GetCategories(ctx); err != nil {
			slog.Warn("categories fetch failed, keeping defaults", "error", err)
		} else if len(categories) > 0 {
			s.dispatch(setCategories{categories: categories})
		}
	})

	for _, kind := range []model.OptionKind{model.OptionPaymentMethod, model.OptionBank, model.OptionUpiApp} {
		kind := kind
		fetch(func() {
			if options, err := s.transport.GetOptions(ctx, kind); err != nil {
				slog.Warn("option fetch failed, keeping defaults", "kind", kind, "error", err)
			} else {
				s.dispatch(setOptions{kind: kind, options: options})
			}
		})
	}

	fetch(func() {
		if budget, err := s.transport.GetBudget(ctx); err != nil {
			slog.Warn("budget fetch failed, keeping default", "error", err)
		} else {
			s.dispatch(setBudget{budget: budget})
		}
	})
	fetch(func() {
		if currency, err := s.transport.GetCurrency(ctx); err != nil {
			slog.Warn("currency fetch failed, keeping default", "error", err)
		} else if currency != "" {
			s.dispatch(setCurrency{currency: currency})
		}
	})
	fetch(func() {
		if profile, err := s.transport.GetProfile(ctx); err != nil {
			slog.Warn("profile fetch failed, keeping default", "error", err)
		} else {
			s.dispatch(setProfile{profile: *profile})
		}
	})
	fetch(func() {
		if prefs, err := s.transport.GetPreferences(ctx); err != nil {
			slog.Warn("preferences fetch failed, keeping defaults", "error", err)
		} else {
			s.dispatch(setPreferences{prefs: *prefs})
		}
	})

	wg.Wait()
}

// loadExpenses applies the remote list, or the snapshot when the fetch
// fails, and clears the loading flag either way.
func (s *Store) loadExpenses(ctx context.Context) {
	defer s.dispatch(setLoading{loading: false})

	expenses, err := s.transport.GetExpenses(ctx)
	if err == nil {
		s.dispatch(setExpenses{expenses: expenses})
		return
	}
	slog.Warn("expenses fetch failed, falling back to snapshot", "error", err)

	var cached []model.Expense
	if readErr := s.readSnapshot(ctx, snapshotKeyExpenses, &cached); readErr != nil {
		slog.Warn("no usable expense snapshot, starting empty", "error", readErr)
		cached = []model.Expense{}
	}
	s.dispatch(setExpenses{expenses: cached})
}

func (s *Store) loadDebts(ctx context.Context) {
	debts, err := s.transport.GetDebts(ctx)
	if err == nil {
		s.dispatch(setDebts{debts: debts})
		return
	}
	slog.Warn("debts fetch failed, falling back to snapshot", "error", err)

	var cached []model.Debt
	if readErr := s.readSnapshot(ctx, snapshotKeyDebts, &cached); readErr != nil {
		cached = []model.Debt{}
	}
	s.dispatch(setDebts{debts: cached})
}

func (s *Store) readSnapshot(ctx context.Context, key string, out any) error {
	data, err := s.snapshots.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrSnapshotCorrupted, err)
	}
	return nil
}

// writeSnapshot caches the named collection best-effort. Failures are
// logged and never propagate.
func (s *Store) writeSnapshot(ctx context.Context, key string) {
	state := s.State()

	var payload any
	switch key {
	case snapshotKeyExpenses:
		payload = state.Expenses
	case snapshotKeyDebts:
		payload = state.Debts
	default:
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("snapshot encode failed", "key", key, "error", err)
		return
	}
	if err := s.snapshots.Put(ctx, key, data); err != nil {
		slog.Warn("snapshot write failed", "key", key, "error", err)
	}
}

// AddExpense creates an expense, optimistically on transport failure. A
// failed remote write without a client-supplied id gets a synthesized one.
func (s *Store) AddExpense(ctx context.Context, expense model.Expense) Outcome {
	if err := expense.Validate(); err != nil {
		return rejected(err)
	}

	outcome := Outcome{Kind: AppliedRemote, ID: expense.ID}
	if saved, err := s.transport.CreateExpense(ctx, expense); err == nil {
		expense = *saved
		outcome.ID = saved.ID
	} else {
		if expense.ID == "" {
			expense.ID = s.nextLocalID()
		}
		outcome = Outcome{Kind: AppliedLocal, ID: expense.ID, Err: err}
		slog.Warn("expense add not persisted remotely", "id", expense.ID, "error", err)
	}

	s.dispatch(addExpense{expense: expense})
	s.writeSnapshot(ctx, snapshotKeyExpenses)
	return outcome
}

// UpdateExpense replaces the expense with a matching id, keeping the
// caller's payload verbatim when the remote write fails.
func (s *Store) UpdateExpense(ctx context.Context, expense model.Expense) Outcome {
	if err := expense.Validate(); err != nil {
		return rejected(err)
	}
	if expense.ID == "" {
		return rejected(fmt.Errorf("expense id cannot be empty"))
	}

	outcome := Outcome{Kind: AppliedRemote, ID: expense.ID}
	if saved, err := s.transport.UpdateExpense(ctx, expense); err == nil {
		expense = *saved
	} else {
		outcome = Outcome{Kind: AppliedLocal, ID: expense.ID, Err: err}
		slog.Warn("expense update not persisted remotely", "id", expense.ID, "error", err)
	}

	s.dispatch(replaceExpense{expense: expense})
	s.writeSnapshot(ctx, snapshotKeyExpenses)
	return outcome
}

// DeleteExpense removes an expense locally regardless of the remote outcome.
func (s *Store) DeleteExpense(ctx context.Context, id string) Outcome {
	outcome := Outcome{Kind: AppliedRemote, ID: id}
	if err := s.transport.DeleteExpense(ctx, id); err != nil {
		outcome = Outcome{Kind: AppliedLocal, ID: id, Err: err}
		slog.Warn("expense delete not persisted remotely", "id", id, "error", err)
	}

	s.dispatch(removeExpense{id: id})
	s.writeSnapshot(ctx, snapshotKeyExpenses)
	return outcome
}

// AddCategory creates a category, optimistically on transport failure.
func (s *Store) AddCategory(ctx context.Context, category model.Category) Outcome {
	if category.Title == "" {
		return rejected(fmt.Errorf("category title cannot be empty"))
	}

	outcome := Outcome{Kind: AppliedRemote, ID: category.ID}
	if saved, err := s.transport.CreateCategory(ctx, category); err == nil {
		category = *saved
		outcome.ID = saved.ID
	} else {
		if category.ID == "" {
			category.ID = s.nextLocalID()
		}
		outcome = Outcome{Kind: AppliedLocal, ID: category.ID, Err: err}
		slog.Warn("category add not persisted remotely", "id", category.ID, "error", err)
	}

	s.dispatch(addCategory{category: category})
	return outcome
}

// DeleteCategory removes a category. Protected ids are rejected before any
// local or remote effect; this is the store's only hard precondition.
func (s *Store) DeleteCategory(ctx context.Context, id string) Outcome {
	if model.IsProtectedCategory(id) {
		return rejected(fmt.Errorf("%w: %q", common.ErrProtectedCategory, id))
	}

	outcome := Outcome{Kind: AppliedRemote, ID: id}
	if err := s.transport.DeleteCategory(ctx, id); err != nil {
		outcome = Outcome{Kind: AppliedLocal, ID: id, Err: err}
		slog.Warn("category delete not persisted remotely", "id", id, "error", err)
	}

	s.dispatch(removeCategory{id: id})
	return outcome
}

// AddOption creates a payment option entry, optimistically on transport
// failure.
func (s *Store) AddOption(ctx context.Context, kind model.OptionKind, option model.PaymentOption) Outcome {
	if !kind.Valid() {
		return rejected(fmt.Errorf("%w: %q", common.ErrInvalidOption, kind))
	}
	if option.Name == "" {
		return rejected(fmt.Errorf("option name cannot be empty"))
	}

	outcome := Outcome{Kind: AppliedRemote, ID: option.ID}
	if saved, err := s.transport.CreateOption(ctx, kind, option); err == nil {
		option = *saved
		outcome.ID = saved.ID
	} else {
		if option.ID == "" {
			option.ID = s.nextLocalID()
		}
		outcome = Outcome{Kind: AppliedLocal, ID: option.ID, Err: err}
		slog.Warn("option add not persisted remotely", "kind", kind, "id", option.ID, "error", err)
	}

	s.dispatch(addOption{kind: kind, option: option})
	return outcome
}

// DeleteOption removes a payment option entry locally regardless of the
// remote outcome.
func (s *Store) DeleteOption(ctx context.Context, kind model.OptionKind, id string) Outcome {
	if !kind.Valid() {
		return rejected(fmt.Errorf("%w: %q", common.ErrInvalidOption, kind))
	}

	outcome := Outcome{Kind: AppliedRemote, ID: id}
	if err := s.transport.DeleteOption(ctx, kind, id); err != nil {
		outcome = Outcome{Kind: AppliedLocal, ID: id, Err: err}
		slog.Warn("option delete not persisted remotely", "kind", kind, "id", id, "error", err)
	}

	s.dispatch(removeOption{kind: kind, id: id})
	return outcome
}

// AddDebt creates a ledger entry, optimistically on transport failure.
func (s *Store) AddDebt(ctx context.Context, debt model.Debt) Outcome {
	if debt.Status == "" {
		debt.Status = model.DebtStatusPending
	}
	if debt.RemainingAmount.IsZero() && !debt.OriginalAmount.IsZero() {
		debt.RemainingAmount = debt.OriginalAmount
	}
	if err := debt.Validate(); err != nil {
		return rejected(err)
	}

	outcome := Outcome{Kind: AppliedRemote, ID: debt.ID}
	if saved, err := s.transport.CreateDebt(ctx, debt); err == nil {
		debt = *saved
		outcome.ID = saved.ID
	} else {
		if debt.ID == "" {
			debt.ID = s.nextLocalID()
		}
		outcome = Outcome{Kind: AppliedLocal, ID: debt.ID, Err: err}
		slog.Warn("debt add not persisted remotely", "id", debt.ID, "error", err)
	}

	s.dispatch(addDebt{debt: debt})
	s.writeSnapshot(ctx, snapshotKeyDebts)
	return outcome
}

// SettleDebt records a payment against a ledger entry and syncs the
// resulting balance. Out-of-range payments are rejected with no effect.
func (s *Store) SettleDebt(ctx context.Context, id string, amount decimal.Decimal) Outcome {
	state := s.State()
	var debt *model.Debt
	for i := range state.Debts {
		if state.Debts[i].ID == id {
			debt = &state.Debts[i]
			break
		}
	}
	if debt == nil {
		return rejected(fmt.Errorf("%w: debt %q", common.ErrNotFound, id))
	}
	if err := debt.Settle(amount); err != nil {
		return rejected(err)
	}

	outcome := Outcome{Kind: AppliedRemote, ID: id}
	updated := *debt
	if saved, err := s.transport.UpdateDebt(ctx, updated); err == nil {
		updated = *saved
	} else {
		outcome = Outcome{Kind: AppliedLocal, ID: id, Err: err}
		slog.Warn("debt settlement not persisted remotely", "id", id, "error", err)
	}

	s.dispatch(replaceDebt{debt: updated})
	s.writeSnapshot(ctx, snapshotKeyDebts)
	return outcome
}

// DeleteDebt removes a ledger entry locally regardless of the remote outcome.
func (s *Store) DeleteDebt(ctx context.Context, id string) Outcome {
	outcome := Outcome{Kind: AppliedRemote, ID: id}
	if err := s.transport.DeleteDebt(ctx, id); err != nil {
		outcome = Outcome{Kind: AppliedLocal, ID: id, Err: err}
		slog.Warn("debt delete not persisted remotely", "id", id, "error", err)
	}

	s.dispatch(removeDebt{id: id})
	s.writeSnapshot(ctx, snapshotKeyDebts)
	return outcome
}

// SetBudget replaces the budget scalar, discarding the prior value.
func (s *Store) SetBudget(ctx context.Context, budget decimal.Decimal) Outcome {
	if budget.IsNegative() {
		return rejected(fmt.Errorf("%w: budget %s", common.ErrInvalidAmount, budget))
	}

	outcome := Outcome{Kind: AppliedRemote}
	if saved, err := s.transport.PutBudget(ctx, budget); err == nil {
		budget = saved
	} else {
		outcome = Outcome{Kind: AppliedLocal, Err: err}
		slog.Warn("budget update not persisted remotely", "error", err)
	}

	s.dispatch(setBudget{budget: budget})
	return outcome
}

// SetCurrency replaces the global currency symbol. Stored amounts are not
// retroactively converted.
func (s *Store) SetCurrency(ctx context.Context, currency string) Outcome {
	if currency == "" {
		return rejected(fmt.Errorf("currency symbol cannot be empty"))
	}

	outcome := Outcome{Kind: AppliedRemote}
	if saved, err := s.transport.PostCurrency(ctx, currency); err == nil && saved != "" {
		currency = saved
	} else if err != nil {
		outcome = Outcome{Kind: AppliedLocal, Err: err}
		slog.Warn("currency update not persisted remotely", "error", err)
	}

	s.dispatch(setCurrency{currency: currency})
	return outcome
}

// SetProfile replaces the user profile.
func (s *Store) SetProfile(ctx context.Context, profile model.UserProfile) Outcome {
	outcome := Outcome{Kind: AppliedRemote}
	if saved, err := s.transport.PutProfile(ctx, profile); err == nil {
		profile = *saved
	} else {
		outcome = Outcome{Kind: AppliedLocal, Err: err}
		slog.Warn("profile update not persisted remotely", "error", err)
	}

	s.dispatch(setProfile{profile: profile})
	return outcome
}

// SetPreferences replaces the notification preferences.
func (s *Store) SetPreferences(ctx context.Context, prefs model.Preferences) Outcome {
	outcome := Outcome{Kind: AppliedRemote}
	if saved, err := s.transport.PutPreferences(ctx, prefs); err == nil {
		prefs = *saved
	} else {
		outcome = Outcome{Kind: AppliedLocal, Err: err}
		slog.Warn("preferences update not persisted remotely", "error", err)
	}

	s.dispatch(setPreferences{prefs: prefs})
	return outcome
}
