package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/khaata/khaata/internal/api"
	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/config"
	"github.com/khaata/khaata/internal/snapshot"
	"github.com/khaata/khaata/internal/store"
)

// initStore builds the synchronized store from config and runs the
// initialization protocol. The returned cleanup closes the snapshot cache.
func initStore(ctx context.Context) (*store.Store, func(), error) {
	serverURL := viper.GetString("server.url")
	if serverURL == "" {
		serverURL = config.DefaultServerURL
	}

	cachePath := viper.GetString("cache.path")
	if cachePath == "" {
		cachePath = config.DefaultCachePath()
	} else {
		cachePath = config.ExpandPath(cachePath)
	}

	snapshots, err := snapshot.NewSQLiteStore(cachePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot cache: %w", err)
	}

	st := store.New(api.NewClient(serverURL), snapshots)
	st.Load(ctx)

	cleanup := func() { _ = snapshots.Close() }
	return st, cleanup, nil
}

// reportOutcome prints a subtle note when a mutation was only applied
// locally. Rejected outcomes are handled by the caller as errors.
func reportOutcome(outcome store.Outcome) {
	if outcome.Kind == store.AppliedLocal {
		fmt.Println(cli.SubtleStyle.Render("(saved locally; backend unreachable)"))
	}
}

// formatAmount renders an amount with the active currency symbol.
func formatAmount(currency string, amount decimal.Decimal) string {
	return currency + amount.StringFixed(2)
}

// parseAmount parses a positive decimal amount from a flag value.
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to today when empty.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return date, nil
}
