package app

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/intake-form/internal/config"
	"github.com/riskibarqy/intake-form/internal/infrastructure/migration"
	"github.com/riskibarqy/intake-form/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/intake-form/internal/interfaces/httpapi"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	idgen "github.com/riskibarqy/intake-form/internal/platform/id"
	"github.com/riskibarqy/intake-form/internal/platform/logging"
	"github.com/riskibarqy/intake-form/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

// App owns the process-wide resources: one HTTP server and one shared pool.
type App struct {
	Server *http.Server
	DB     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	target, err := resolveDBTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfigParse, "resolve DATABASE_URL", err)
	}

	db, err := openDB(ctx, cfg, target)
	if err != nil {
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := migration.Apply(ctx, target.MigrateURL, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	formRepo := sqlstore.NewFormRepository(db)
	formSvc := usecase.NewFormService(formRepo, idgen.NewUUIDGenerator())

	handler := httpapi.NewHandler(formSvc, logger, cfg.MaxBodyBytes)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server, err := newHTTPServer(cfg, router)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "app ready", "db_driver", target.Driver, "db_name", target.Name, "addr", cfg.HTTPAddr)
	return &App{Server: server, DB: db, logger: logger}, nil
}

func openDB(ctx context.Context, cfg config.Config, target dbTarget) (*sqlx.DB, error) {
	db, err := otelsqlx.Open(target.Driver, target.DSN,
		otelsql.WithDBSystem(target.System),
		otelsql.WithDBName(target.Name),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "open database", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperr.Wrap(apperr.KindStorage, "ping database", err)
	}

	return db, nil
}

func newHTTPServer(cfg config.Config, handler http.Handler) (*http.Server, error) {
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, apperr.New(apperr.KindConfigParse, "build http server", "http server addr cannot be empty")
	}

	return server, nil
}

// Close releases the storage pool. Call after the server has shut down.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	if err := a.DB.Close(); err != nil {
		return apperr.Wrap(apperr.KindStorage, "close database", err)
	}
	return nil
}
