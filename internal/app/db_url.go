package app

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"

	sqliteDefaultPragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

// dbTarget is a DATABASE_URL resolved into what database/sql and
// golang-migrate each expect.
type dbTarget struct {
	Driver     string
	DSN        string
	MigrateURL string
	System     string
	Name       string
}

func resolveDBTarget(raw string, disablePreparedBinaryResult bool) (dbTarget, error) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		dsn := normalizeDBURL(trimmed, disablePreparedBinaryResult)
		return dbTarget{
			Driver:     driverPostgres,
			DSN:        dsn,
			MigrateURL: dsn,
			System:     "postgresql",
			Name:       dbNameFromURL(trimmed),
		}, nil
	case strings.HasPrefix(lower, "sqlite:"), strings.HasPrefix(lower, "file:"):
		path := sqlitePath(trimmed)
		if path == "" {
			return dbTarget{}, fmt.Errorf("sqlite database url %q has no file path", raw)
		}
		return dbTarget{
			Driver:     driverSQLite,
			DSN:        path + "?" + sqliteDefaultPragmas,
			MigrateURL: "sqlite://" + path,
			System:     "sqlite",
			Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		}, nil
	default:
		return dbTarget{}, fmt.Errorf("unsupported database url scheme in %q: use postgres://, sqlite:// or file:", redactDBURL(trimmed))
	}
}

func sqlitePath(raw string) string {
	path := raw
	for _, prefix := range []string{"sqlite://", "sqlite:", "file://", "file:"} {
		if len(path) >= len(prefix) && strings.EqualFold(path[:len(prefix)], prefix) {
			path = path[len(prefix):]
			break
		}
	}
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	return strings.TrimSpace(path)
}

// redactDBURL hides the password so startup errors can be logged.
func redactDBURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.User == nil {
		return raw
	}
	return parsed.Redacted()
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
