package migration

import (
	"context"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	"github.com/riskibarqy/intake-form/internal/platform/logging"
)

//go:embed sql/*.sql
var files embed.FS

// Apply brings the schema at databaseURL up to the latest embedded version.
// databaseURL uses golang-migrate schemes: postgres://, postgresql:// or sqlite://.
func Apply(ctx context.Context, databaseURL string, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	src, err := iofs.New(files, "sql")
	if err != nil {
		return apperr.Wrap(apperr.KindIO, "open embedded migrations", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "create migrator", err)
	}
	defer closeMigrator(ctx, m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperr.Wrap(apperr.KindStorage, "apply migrations", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return apperr.Wrap(apperr.KindStorage, "read schema version", err)
	}
	if dirty {
		return apperr.New(apperr.KindStorage, "read schema version", "schema is dirty, manual intervention required")
	}

	logger.InfoContext(ctx, "schema ready", "version", version)
	return nil
}

func closeMigrator(ctx context.Context, m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.WarnContext(ctx, "close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.WarnContext(ctx, "close migration db", "error", dbErr)
	}
}
