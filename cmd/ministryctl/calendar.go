package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/repository"
	"ministry-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func exportICSCmd() *cobra.Command {
	var month, out string

	cmd := &cobra.Command{
		Use:   "export-ics",
		Short: "Write a month of events as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.DB()
			if err != nil {
				return err
			}
			events := service.NewEventService(
				repository.NewEventRepository(db),
				repository.NewUserRepository(db),
				app.catalog,
				validator.New(),
			)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return events.ExportMonth(app.ctx, month, w)
		},
	}

	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "Month to export (YYYY-MM)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to stdout)")
	return cmd
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the loaded event types and role identities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCatalog(cmd.OutOrStdout(), app.catalog)
		},
	}
}

func writeCatalog(w io.Writer, cat *catalog.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(catalog.File{
		DefaultEventType: cat.DefaultEventType(),
		EventTypes:       cat.EventTypes(),
		Supervisors:      cat.Supervisors(),
		StaffMembers:     cat.StaffMembers(),
	})
}
