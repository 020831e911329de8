package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/model"
	"github.com/khaata/khaata/internal/store"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, and delete expense categories. Default categories cannot be deleted.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state := st.State()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Title"),
				cli.HeaderStyle.Render("Icon"),
				cli.HeaderStyle.Render("Color"))

			for _, c := range state.Categories {
				title := c.Title
				if model.IsProtectedCategory(c.ID) {
					title += cli.SubtleStyle.Render(" (default)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, title, c.Icon, c.Color)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.AddCategory(ctx, model.Category{
				Title: args[0],
				Icon:  icon,
				Color: color,
			})
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not add category", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added category %q (%s)", args[0], outcome.ID)))
			reportOutcome(outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "tag", "icon name")
	cmd.Flags().StringVar(&color, "color", model.FallbackColor, "display color (hex)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := st.DeleteCategory(ctx, id)
			if outcome.Kind == store.Rejected {
				if errors.Is(outcome.Err, common.ErrProtectedCategory) {
					return common.NewUserError("default categories cannot be removed", nil)
				}
				return common.NewUserError("could not delete category", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted category %s", id)))
			reportOutcome(outcome)
			return nil
		},
	}
}
