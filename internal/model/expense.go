package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/common"
)

// ExpenseType indicates the direction of money flow for an expense entry.
type ExpenseType string

const (
	// ExpenseTypeIncome represents money coming in.
	ExpenseTypeIncome ExpenseType = "income"
	// ExpenseTypeOutcome represents money going out.
	ExpenseTypeOutcome ExpenseType = "outcome"
)

// Valid reports whether t is a known expense type.
func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeIncome || t == ExpenseTypeOutcome
}

// Expense represents a single income or outcome entry.
type Expense struct {
	Date          time.Time       `json:"date"`
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Type          ExpenseType     `json:"type"`
	Notes         string          `json:"notes,omitempty"`
	Bank          string          `json:"bank,omitempty"`
	UpiApp        string          `json:"upiApp,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// Validate checks that the expense can be constructed at all. An update
// overwrites the stored entry in place; no history is kept.
func (e *Expense) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("expense title cannot be empty")
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", common.ErrInvalidAmount, e.Amount)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("invalid expense type: %q", e.Type)
	}
	return nil
}
