// Package service defines the interfaces for the store's collaborators.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/model"
)

// Transport is the remote collection-endpoint boundary the store
// synchronizes against. Every write returns the persisted representation;
// callers must apply the echoed value rather than assume the request body
// was stored verbatim.
type Transport interface {
	// Expense operations
	GetExpenses(ctx context.Context) ([]model.Expense, error)
	CreateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error)
	UpdateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Payment option operations (payment methods, banks, UPI apps)
	GetOptions(ctx context.Context, kind model.OptionKind) ([]model.PaymentOption, error)
	CreateOption(ctx context.Context, kind model.OptionKind, option model.PaymentOption) (*model.PaymentOption, error)
	DeleteOption(ctx context.Context, kind model.OptionKind, id string) error

	// Debt ledger operations
	GetDebts(ctx context.Context) ([]model.Debt, error)
	CreateDebt(ctx context.Context, debt model.Debt) (*model.Debt, error)
	UpdateDebt(ctx context.Context, debt model.Debt) (*model.Debt, error)
	DeleteDebt(ctx context.Context, id string) error

	// Scalar operations
	GetBudget(ctx context.Context) (decimal.Decimal, error)
	PutBudget(ctx context.Context, budget decimal.Decimal) (decimal.Decimal, error)
	GetCurrency(ctx context.Context) (string, error)
	PostCurrency(ctx context.Context, currency string) (string, error)
	GetProfile(ctx context.Context) (*model.UserProfile, error)
	PutProfile(ctx context.Context, profile model.UserProfile) (*model.UserProfile, error)
	GetPreferences(ctx context.Context) (*model.Preferences, error)
	PutPreferences(ctx context.Context, prefs model.Preferences) (*model.Preferences, error)
}

// Snapshots is an opaque get/set-by-key store used to cache collection
// snapshots locally. It is written best-effort after mutations and read only
// when the remote list fetch fails at initialization; it is never the
// arbiter of truth when the transport is healthy.
type Snapshots interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
