package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khaata/khaata/internal/cli"
	"github.com/khaata/khaata/internal/common"
	"github.com/khaata/khaata/internal/store"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the user profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile := st.State().Profile
			fmt.Println(cli.TitleStyle.Render("Profile"))
			fmt.Printf("Name:  %s\n", profile.Name)
			fmt.Printf("Email: %s\n", profile.Email)
			return nil
		},
	})

	var (
		name  string
		email string
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update the profile",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile := st.State().Profile
			if c.Flags().Changed("name") {
				profile.Name = name
			}
			if c.Flags().Changed("email") {
				profile.Email = email
			}

			outcome := st.SetProfile(ctx, profile)
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not update profile", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Profile updated"))
			reportOutcome(outcome)
			return nil
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "display name")
	setCmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.AddCommand(setCmd)

	return cmd
}

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or update notification preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			prefs := st.State().Preferences
			fmt.Println(cli.TitleStyle.Render("Preferences"))
			fmt.Printf("Push notifications: %v\n", prefs.PushNotifications)
			fmt.Printf("Budget alerts:      %v\n", prefs.BudgetAlerts)
			return nil
		},
	})

	var (
		push         bool
		budgetAlerts bool
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update the preferences",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()

			st, cleanup, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			prefs := st.State().Preferences
			if c.Flags().Changed("push") {
				prefs.PushNotifications = push
			}
			if c.Flags().Changed("budget-alerts") {
				prefs.BudgetAlerts = budgetAlerts
			}

			outcome := st.SetPreferences(ctx, prefs)
			if outcome.Kind == store.Rejected {
				return common.NewUserError("could not update preferences", outcome.Err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Preferences updated"))
			reportOutcome(outcome)
			return nil
		},
	}
	setCmd.Flags().BoolVar(&push, "push", true, "enable push notifications")
	setCmd.Flags().BoolVar(&budgetAlerts, "budget-alerts", true, "enable budget alerts")
	cmd.AddCommand(setCmd)

	return cmd
}
