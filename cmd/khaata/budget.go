package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/store"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set the budget for the current period",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current budget",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := st.State()
			fmt.Println(cli.TitleStyle.Render("Budget"))
			fmt.Println(formatAmount(state.Currency, state.Budget))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Replace the budget, discarding the prior value",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.SetBudget(ctx, amount)
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not set budget", outcome.Err)
			}

			state := st.State()
			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Budget set to %s", formatAmount(state.Currency, state.Budget))))
			reportOutcome(outcome)
			return nil
		},
	})

	return cmd
}

func currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Show or set the display currency symbol",
		Long:  `Show or set the currency symbol applied to all display formatting. Changing it does not convert stored amounts.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current currency symbol",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Println(st.State().Currency)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <symbol>",
		Short: "Replace the currency symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.SetCurrency(ctx, args[0])
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not set currency", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Currency set to %s", args[0])))
			reportOutcome(outcome)
			return nil
		},
	})

	return cmd
}
