package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/model"
	"github.com/khaata/khaata/internal/store"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Manage the debt ledger",
		Long:  `Track money owed and receivable, settle payments, and delete entries.`,
	}

	cmd.AddCommand(listDebtsCmd())
	cmd.AddCommand(addDebtCmd())
	cmd.AddCommand(settleDebtCmd())
	cmd.AddCommand(deleteDebtCmd())

	return cmd
}

func listDebtsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := st.State()
			if len(state.Debts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Ledger is empty."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Person"),
				cli.HeaderStyle.Render("Reason"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Original"),
				cli.HeaderStyle.Render("Status"))

			for _, d := range state.Debts {
				if !all && d.Status == model.DebtStatusSettled {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Type, d.Person, d.Reason,
					formatAmount(state.Currency, d.RemainingAmount),
					formatAmount(state.Currency, d.OriginalAmount),
					d.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include settled entries")
	return cmd
}

func addDebtCmd() *cobra.Command {
	var (
		amountStr string
		debtType  string
		reason    string
		dateStr   string
	)

	cmd := &cobra.Command{
		Use:   "add <person>",
		Short: "Add a ledger entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.AddDebt(ctx, model.Debt{
				Type:           model.DebtType(debtType),
				Person:         args[0],
				Reason:         reason,
				Date:           date,
				OriginalAmount: amount,
			})
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not add ledger entry", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Recorded %s %s for %s (%s)", debtType, amountStr, args[0], outcome.ID)))
			reportOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "debt amount")
	cmd.Flags().StringVar(&debtType, "type", string(model.DebtTypeOwe), "entry type (owe, receive)")
	cmd.Flags().StringVar(&reason, "reason", "", "why the debt exists")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func settleDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <id> <amount>",
		Short: "Record a payment against a ledger entry",
		Long:  `Decrement the remaining balance of a ledger entry. The payment must not exceed the remaining amount; settling to zero marks the entry settled.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.SettleDebt(ctx, args[0], amount)
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not settle debt", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Settled %s against %s", args[1], args[0])))
			reportOutcome(outcome)
			return nil
		},
	}
}

func deleteDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ledger entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.DeleteDebt(ctx, args[0])
			reportOutcome(outcome)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted %s", args[0])))
			return nil
		},
	}
}
