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

func methodsCmd() *cobra.Command {
	return optionCmd("methods", "payment methods", model.OptionPaymentMethod)
}

func banksCmd() *cobra.Command {
	return optionCmd("banks", "banks", model.OptionBank)
}

func upiCmd() *cobra.Command {
	return optionCmd("upi", "UPI apps", model.OptionUpiApp)
}

// optionCmd builds the shared list/add/delete command tree for one of the
// three payment option collections.
func optionCmd(use, plural string, kind model.OptionKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Manage %s", plural),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", plural),
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			options := optionsForKind(st.State(), kind)
			if len(options) == 0 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No %s configured.", plural)))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Icon"))
			for _, o := range options {
				fmt.Fprintf(w, "%s\t%s\t%s\n", o.ID, o.Name, o.Icon)
			}
			return nil
		},
	})

	var icon string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: fmt.Sprintf("Add one of the %s", plural),
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.AddOption(ctx, kind, model.PaymentOption{Name: args[0], Icon: icon})
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not add option", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %q (%s)", args[0], outcome.ID)))
			reportOutcome(outcome)
			return nil
		},
	}
	addCmd.Flags().StringVar(&icon, "icon", "credit-card", "icon name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete one of the %s by id", plural),
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.DeleteOption(ctx, kind, args[0])
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not delete option", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted %s", args[0])))
			reportOutcome(outcome)
			return nil
		},
	})

	return cmd
}

func optionsForKind(state store.State, kind model.OptionKind) []model.PaymentOption {
	switch kind {
	case model.OptionPaymentMethod:
		return state.PaymentMethods
	case model.OptionBank:
		return state.Banks
	case model.OptionUpiApp:
		return state.UpiApps
	}
	return nil
}
