package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxMigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"hotbray.GO/config"
	"hotbray.GO/migrations"
	"hotbray.GO/model/entity"
)

var (
	migrateDown  bool
	migrateSteps int
)

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply schema migrations (Postgres) or AutoMigrate (MySQL)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if config.DBDriver() == "mysql" {
			if migrateDown {
				return errors.New("--down is only supported on postgres")
			}
			if err := db.AutoMigrate(entity.Models()...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "AutoMigrate complete.")
			return nil
		}
		m, err := newMigrator(db)
		if err != nil {
			return err
		}
		defer m.Close()
		if err := runMigrations(m, migrateDown, migrateSteps); err != nil {
			return err
		}
		version, dirty, _ := m.Version()
		fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}

func newMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	driver, err := pgxMigrate.WithInstance(sqlDB, &pgxMigrate.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrate driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "pgx5", driver)
}

// runMigrations moves the schema by steps when non-zero, else all the way up or down.
// An already current schema is not an error.
func runMigrations(m *migrate.Migrate, down bool, steps int) error {
	var err error
	switch {
	case steps != 0 && down:
		err = m.Steps(-steps)
	case steps != 0:
		err = m.Steps(steps)
	case down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back instead of applying")
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 0, "Number of migrations to apply or roll back (0 = all)")
	rootCmd.AddCommand(migrateCmd)
}
