package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/khaata/khaata/internal/api"
	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/config"
	"github.com/khaata/khaata/internal/snapshot"
	"github.com/khaata/khaata/internal/store"
)

func pullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Refresh all collections from the backend",
		Long:  `Fetch every collection and scalar from the backend, falling back to the local snapshot for expenses and debts when the backend is unreachable.`,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

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
				return fmt.Errorf("failed to open snapshot cache: %w", err)
			}
			defer func() { _ = snapshots.Close() }()

			st := store.New(api.NewClient(serverURL), snapshots)

			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetDescription("Syncing with "+serverURL),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionClearOnFinish(),
			)
			st.Load(ctx)
			_ = bar.Finish()

			state := st.State()
			fmt.Println(cli.TitleStyle.Render("Synced"))
			fmt.Printf("Expenses:        %d\n", len(state.Expenses))
			fmt.Printf("Categories:      %d\n", len(state.Categories))
			fmt.Printf("Payment methods: %d\n", len(state.PaymentMethods))
			fmt.Printf("Banks:           %d\n", len(state.Banks))
			fmt.Printf("UPI apps:        %d\n", len(state.UpiApps))
			fmt.Printf("Ledger entries:  %d\n", len(state.Debts))
			fmt.Printf("Budget:          %s\n", formatAmount(state.Currency, state.Budget))
			return nil
		},
	}
}
