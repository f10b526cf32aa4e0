package main

import (
	"fmt"

	"ministry-portal-backend/internal/auth"
	"ministry-portal-backend/internal/repository"

	"github.com/spf13/cobra"
)

func setupAdminCmd() *cobra.Command {
	var req auth.SetupAdminRequest

	cmd := &cobra.Command{
		Use:   "setup-admin",
		Short: "Create the first administrator (only while no user exists)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.DB()
			if err != nil {
				return err
			}
			authService, err := auth.NewAuthService(auth.NewAuthConfig(app.cfg), repository.NewUserRepository(db))
			if err != nil {
				return err
			}

			profile, err := authService.SetupAdmin(&req)
			if err != nil {
				return err
			}
			app.log.WithField("email", profile.Email).Info("administrator created")
			fmt.Fprintf(cmd.OutOrStdout(), "Administrator %s <%s> created (id %s)\n", profile.Name, profile.Email, profile.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Administrator name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Administrator email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Administrator password (min 6 characters)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func clearUsersCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear-users",
		Short: "Delete every user, their assignments and activities. Events are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to delete users without --yes")
			}
			db, err := app.DB()
			if err != nil {
				return err
			}

			deleted, err := repository.NewUserRepository(db).DeleteAll()
			if err != nil {
				return fmt.Errorf("failed to delete users: %w", err)
			}
			app.log.WithField("deleted", deleted).Warn("all users deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d users\n", deleted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the deletion")
	return cmd
}
