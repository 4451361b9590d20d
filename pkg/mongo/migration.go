package mongo

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb" // MongoDB driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.json
var migrationsFS embed.FS

// runMigrations applies the embedded index migrations if enabled in config.
func runMigrations(cfg Config, log *zap.Logger) error {
	if !cfg.Migrations.Enabled {
		log.Info("database migrations disabled")
		return nil
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	log.Info("running database migrations")

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.BuildURI())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Warn("failed to close migrator source", zap.Error(sourceErr))
		}
		if dbErr != nil {
			log.Warn("failed to close migrator database", zap.Error(dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("database is up to date, no migrations needed")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, versionErr := m.Version()
	if versionErr != nil {
		log.Warn("failed to get migration version", zap.Error(versionErr))
	}
	log.Info("migrations applied successfully",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)

	return nil
}
