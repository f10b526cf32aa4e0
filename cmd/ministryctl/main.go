// Command ministryctl runs administrative tasks against the portal database.
package main

import (
	"context"
	"fmt"
	"os"

	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/config"
	"ministry-portal-backend/internal/database"
	"ministry-portal-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// App holds the dependencies shared by every command
type App struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	log     *logger.Logger
	ctx     context.Context

	db *gorm.DB
}

var app *App

func main() {
	rootCmd := &cobra.Command{
		Use:           "ministryctl",
		Short:         "Ministry portal administration",
		Long:          `Administrative tasks for the ministry portal: first administrator, member seeding, user cleanup and calendar export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Context())
		},
	}

	rootCmd.AddCommand(setupAdminCmd())
	rootCmd.AddCommand(clearUsersCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(exportICSCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initApp loads configuration and the catalog. The database is opened on
// first use so that commands like catalog work without one.
func initApp(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	app = &App{
		cfg:     cfg,
		catalog: cat,
		log:     logger.New().WithField("component", "ministryctl"),
		ctx:     ctx,
	}
	return nil
}

// DB opens the database connection, migrating the schema on first use
func (a *App) DB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.Initialize(a.cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	return db, nil
}
