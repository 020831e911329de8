package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/common"
)

// DebtType indicates which direction a ledger entry points.
type DebtType string

const (
	// DebtTypeOwe means the user owes someone money.
	DebtTypeOwe DebtType = "owe"
	// DebtTypeReceive means someone owes the user money.
	DebtTypeReceive DebtType = "receive"
)

// DebtStatus tracks whether a ledger entry has been fully settled.
type DebtStatus string

const (
	// DebtStatusPending marks an entry with an outstanding balance.
	DebtStatusPending DebtStatus = "pending"
	// DebtStatusSettled marks an entry whose remaining amount reached zero.
	DebtStatusSettled DebtStatus = "settled"
)

// Debt represents a single ledger entry. RemainingAmount must stay within
// [0, OriginalAmount].
type Debt struct {
	Date            time.Time       `json:"date"`
	ID              string          `json:"id"`
	Type            DebtType        `json:"type"`
	Person          string          `json:"person"`
	Reason          string          `json:"reason"`
	Status          DebtStatus      `json:"status"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}

// Validate checks the entry's invariants.
func (d *Debt) Validate() error {
	if d.Person == "" {
		return fmt.Errorf("debt person cannot be empty")
	}
	if d.Type != DebtTypeOwe && d.Type != DebtTypeReceive {
		return fmt.Errorf("invalid debt type: %q", d.Type)
	}
	if d.OriginalAmount.IsNegative() {
		return fmt.Errorf("%w: original amount %s", common.ErrInvalidAmount, d.OriginalAmount)
	}
	if d.RemainingAmount.IsNegative() || d.RemainingAmount.GreaterThan(d.OriginalAmount) {
		return fmt.Errorf("%w: remaining amount %s outside [0, %s]",
			common.ErrInvalidAmount, d.RemainingAmount, d.OriginalAmount)
	}
	return nil
}

// Settle records a payment against the entry. The payment must be positive
// and must not exceed the remaining balance; settling to zero flips the
// status to settled.
func (d *Debt) Settle(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: settlement amount %s must be positive", common.ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(d.RemainingAmount) {
		return fmt.Errorf("%w: settlement amount %s exceeds remaining %s",
			common.ErrInvalidAmount, amount, d.RemainingAmount)
	}

	d.RemainingAmount = d.RemainingAmount.Sub(amount)
	if d.RemainingAmount.IsZero() {
		d.Status = DebtStatusSettled
	}
	return nil
}
