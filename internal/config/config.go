package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	"github.com/riskibarqy/intake-form/internal/platform/logging"
)

const defaultEnvFile = ".env"

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string        `env:"APP_ENV" envDefault:"dev"`
	ServiceName             string        `env:"APP_SERVICE_NAME" envDefault:"intake-form-api"`
	HTTPAddr                string        `env:"APP_HTTP_ADDR" envDefault:"0.0.0.0:3000"`
	ReadTimeout             time.Duration `env:"APP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout            time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout         time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes            int64         `env:"APP_MAX_BODY_BYTES" envDefault:"65536"`
	RawLogLevel             string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	RawCORSAllowedOrigins   string        `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	DBURL                   string        `env:"DATABASE_URL"`
	DBMaxOpenConns          int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns          int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime       time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	DBDisablePreparedBinary bool          `env:"DB_DISABLE_PREPARED_BINARY_RESULT" envDefault:"false"`
	DBAutoMigrate           bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Derived in normalize.
	LogLevel           logging.Level
	CORSAllowedOrigins []string
}

// Load reads ./.env when present, then the process environment.
func Load() (Config, error) {
	return LoadFrom(defaultEnvFile)
}

// LoadFrom is Load with an explicit dotenv path. Variables already set in the
// process environment win over the file.
func LoadFrom(envFile string) (Config, error) {
	environment, err := readEnvironment(envFile)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, apperr.Wrap(apperr.KindConfigParse, "parse environment", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	appEnv, err := parseAppEnv(c.AppEnv)
	if err != nil {
		return apperr.Wrap(apperr.KindConfigParse, "parse APP_ENV", err)
	}
	c.AppEnv = appEnv

	c.DBURL = strings.TrimSpace(c.DBURL)
	if c.DBURL == "" {
		return apperr.New(apperr.KindConfigRead, "load config", "DATABASE_URL is required")
	}

	c.HTTPAddr = strings.TrimSpace(c.HTTPAddr)
	if c.HTTPAddr == "" {
		return apperr.New(apperr.KindConfigParse, "load config", "APP_HTTP_ADDR must not be empty")
	}
	if c.MaxBodyBytes <= 0 {
		return apperr.New(apperr.KindConfigParse, "load config", "APP_MAX_BODY_BYTES must be > 0")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return apperr.New(apperr.KindConfigParse, "load config", "APP_*_TIMEOUT values must be > 0")
	}
	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		return apperr.New(apperr.KindConfigParse, "load config", "DB connection limits must be >= 0")
	}

	c.LogLevel = parseLogLevel(c.RawLogLevel)
	c.CORSAllowedOrigins = splitCSV(c.RawCORSAllowedOrigins)
	return nil
}

func readEnvironment(envFile string) (map[string]string, error) {
	environment := make(map[string]string)

	if strings.TrimSpace(envFile) != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, apperr.Wrap(apperr.KindConfigParse, "read "+envFile, err)
		default:
			for key, value := range fileValues {
				environment[key] = value
			}
		}
	}

	for _, pair := range os.Environ() {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		environment[key] = value
	}

	return environment, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
