// Package api implements the REST transport for the remote collection
// endpoints. All failures are wrapped with common.ErrTransport so callers
// can distinguish transport trouble from domain errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client talks to the collection endpoints over HTTP with JSON bodies.
// There is no auth, pagination, retry, or conditional-write support at this
// boundary.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// do issues a request and decodes the JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", common.ErrTransport, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", common.ErrTransport, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s %s returned %d - %s",
			common.ErrTransport, method, path, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", common.ErrTransport, err)
		}
	}
	return nil
}

// GetExpenses lists all expenses.
func (c *Client) GetExpenses(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// CreateExpense posts a new expense and returns the persisted representation,
// including a server-assigned id when the request carried none.
func (c *Client) CreateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	var saved model.Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", expense, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateExpense replaces the expense with a matching id.
func (c *Client) UpdateExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	var saved model.Expense
	if err := c.do(ctx, http.MethodPut, "/expenses/"+url.PathEscape(expense.ID), expense, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil)
}

// GetCategories lists all categories.
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory posts a new category.
func (c *Client) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	var saved model.Category
	if err := c.do(ctx, http.MethodPost, "/categories", category, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteCategory removes a category by id. Protected ids are rejected by the
// store before this call is ever made.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}

// GetOptions lists one of the payment option collections.
func (c *Client) GetOptions(ctx context.Context, kind model.OptionKind) ([]model.PaymentOption, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidOption, kind)
	}
	var options []model.PaymentOption
	if err := c.do(ctx, http.MethodGet, "/"+string(kind), nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// CreateOption posts a new entry to one of the payment option collections.
func (c *Client) CreateOption(ctx context.Context, kind model.OptionKind, option model.PaymentOption) (*model.PaymentOption, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidOption, kind)
	}
	var saved model.PaymentOption
	if err := c.do(ctx, http.MethodPost, "/"+string(kind), option, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteOption removes an entry from one of the payment option collections.
func (c *Client) DeleteOption(ctx context.Context, kind model.OptionKind, id string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidOption, kind)
	}
	return c.do(ctx, http.MethodDelete, "/"+string(kind)+"/"+url.PathEscape(id), nil, nil)
}

// GetDebts lists all ledger entries.
func (c *Client) GetDebts(ctx context.Context) ([]model.Debt, error) {
	var debts []model.Debt
	if err := c.do(ctx, http.MethodGet, "/debts", nil, &debts); err != nil {
		return nil, err
	}
	return debts, nil
}

// CreateDebt posts a new ledger entry.
func (c *Client) CreateDebt(ctx context.Context, debt model.Debt) (*model.Debt, error) {
	var saved model.Debt
	if err := c.do(ctx, http.MethodPost, "/debts", debt, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateDebt replaces the ledger entry with a matching id.
func (c *Client) UpdateDebt(ctx context.Context, debt model.Debt) (*model.Debt, error) {
	var saved model.Debt
	if err := c.do(ctx, http.MethodPut, "/debts/"+url.PathEscape(debt.ID), debt, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteDebt removes a ledger entry by id.
func (c *Client) DeleteDebt(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/debts/"+url.PathEscape(id), nil, nil)
}

type budgetPayload struct {
	Budget decimal.Decimal `json:"budget"`
}

// GetBudget fetches the single budget scalar for the current period.
func (c *Client) GetBudget(ctx context.Context) (decimal.Decimal, error) {
	var payload budgetPayload
	if err := c.do(ctx, http.MethodGet, "/budget", nil, &payload); err != nil {
		return decimal.Zero, err
	}
	return payload.Budget, nil
}

// PutBudget replaces the budget scalar, discarding the prior value.
func (c *Client) PutBudget(ctx context.Context, budget decimal.Decimal) (decimal.Decimal, error) {
	var payload budgetPayload
	if err := c.do(ctx, http.MethodPut, "/budget", budgetPayload{Budget: budget}, &payload); err != nil {
		return decimal.Zero, err
	}
	return payload.Budget, nil
}

type currencyPayload struct {
	Currency string `json:"currency"`
}

// GetCurrency fetches the global currency symbol.
func (c *Client) GetCurrency(ctx context.Context) (string, error) {
	var payload currencyPayload
	if err := c.do(ctx, http.MethodGet, "/currency", nil, &payload); err != nil {
		return "", err
	}
	return payload.Currency, nil
}

// PostCurrency replaces the global currency symbol. Stored amounts are not
// retroactively converted.
func (c *Client) PostCurrency(ctx context.Context, currency string) (string, error) {
	var payload currencyPayload
	if err := c.do(ctx, http.MethodPost, "/currency", currencyPayload{Currency: currency}, &payload); err != nil {
		return "", err
	}
	return payload.Currency, nil
}

// GetProfile fetches the user profile.
func (c *Client) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/user", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// PutProfile replaces the user profile.
func (c *Client) PutProfile(ctx context.Context, profile model.UserProfile) (*model.UserProfile, error) {
	var saved model.UserProfile
	if err := c.do(ctx, http.MethodPut, "/user", profile, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetPreferences fetches the notification preferences.
func (c *Client) GetPreferences(ctx context.Context) (*model.Preferences, error) {
	var prefs model.Preferences
	if err := c.do(ctx, http.MethodGet, "/preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// PutPreferences replaces the notification preferences.
func (c *Client) PutPreferences(ctx context.Context, prefs model.Preferences) (*model.Preferences, error) {
	var saved model.Preferences
	if err := c.do(ctx, http.MethodPut, "/preferences", prefs, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
