package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/model"
	"github.com/khaata/khaata/internal/store"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expense and income entries",
		Long:  `Add, list, update, and delete expense and income entries.`,
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(updateExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := st.State()
			if len(state.Expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No entries yet. Use 'khaata expenses add' to create one."))
				return nil
			}

			expenses := state.Expenses
			if limit > 0 && limit < len(expenses) {
				expenses = expenses[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Title"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"))

			for _, e := range expenses {
				icon, _ := model.DisplayFor(state.Categories, e.Category)
				amount := formatAmount(state.Currency, e.Amount)
				if e.Type == model.ExpenseTypeOutcome {
					amount = "-" + amount
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\t%s\n",
					e.ID,
					e.Date.Format("2006-01-02"),
					e.Title,
					icon, e.Category,
					e.Type,
					amount)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many entries")
	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amountStr string
		category  string
		dateStr   string
		method    string
		entryType string
		notes     string
		bank      string
		upiApp    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			outcome := st.AddExpense(ctx, model.Expense{
				Title:         args[0],
				Amount:        amount,
				Category:      category,
				Date:          date,
				PaymentMethod: method,
				Type:          model.ExpenseType(entryType),
				Notes:         notes,
				Bank:          bank,
				UpiApp:        upiApp,
			})
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not add entry", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %q (%s)", args[0], outcome.ID)))
			reportOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "0", "entry amount")
	cmd.Flags().StringVar(&category, "category", "Other", "category title")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&method, "method", "", "payment method name")
	cmd.Flags().StringVar(&entryType, "type", string(model.ExpenseTypeOutcome), "entry type (income, outcome)")
	cmd.Flags().StringVar(&notes, "notes", "", "optional notes")
	cmd.Flags().StringVar(&bank, "bank", "", "optional bank name")
	cmd.Flags().StringVar(&upiApp, "upi", "", "optional UPI app name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func updateExpenseCmd() *cobra.Command {
	var (
		amountStr string
		category  string
		dateStr   string
		method    string
		entryType string
		notes     string
		title     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an entry by id",
		Long:  `Replace the entry with the given id. Unset flags keep the current values; an update overwrites in place, no history is kept.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := st.State()
			var current *model.Expense
			for i := range state.Expenses {
				if state.Expenses[i].ID == id {
					current = &state.Expenses[i]
					break
				}
			}
			if current == nil {
				return common.NewUserError(fmt.Sprintf("no entry with id %q", id), nil)
			}

			updated := *current
			if cmd.Flags().Changed("title") {
				updated.Title = title
			}
			if cmd.Flags().Changed("amount") {
				amount, parseErr := parseAmount(amountStr)
				if parseErr != nil {
					return parseErr
				}
				updated.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				updated.Category = category
			}
			if cmd.Flags().Changed("date") {
				date, parseErr := parseDate(dateStr)
				if parseErr != nil {
					return parseErr
				}
				updated.Date = date
			}
			if cmd.Flags().Changed("method") {
				updated.PaymentMethod = method
			}
			if cmd.Flags().Changed("type") {
				updated.Type = model.ExpenseType(entryType)
			}
			if cmd.Flags().Changed("notes") {
				updated.Notes = notes
			}

			outcome := st.UpdateExpense(ctx, updated)
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not update entry", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated %q", id)))
			reportOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category title")
	cmd.Flags().StringVar(&dateStr, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&method, "method", "", "new payment method")
	cmd.Flags().StringVar(&entryType, "type", "", "new type (income, outcome)")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete entries by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, id := range args {
				outcome := st.DeleteExpense(ctx, id)
				reportOutcome(outcome)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Deleted %s", strings.Join(args, ", "))))
			return nil
		},
	}
}
