package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/migrations"
)

// busyTimeoutMillis bounds how long a write waits for another process that
// holds the database lock.
const busyTimeoutMillis = 5000

// DB is the SQLite handle behind the sqlite slot store.
type DB struct {
	*sql.DB
}

// OpenSQLite opens the journal database at cfg.DSN, creating the file with
// owner-only permissions when it is missing, and migrates it to the latest
// schema.
func OpenSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	l := log.With().Str("func", "OpenSQLite").Str("path", cfg.DSN).Logger()

	if err := ensurePrivateFile(cfg.DSN); err != nil {
		l.Err(err).Msg("error preparing database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		l.Err(err).Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one writer; sqlite serializes writes anyway
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		l.Err(err).Msg("database ping failed")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting to DB: %w", err)
	}

	applied, err := migrations.Migrate(ctx, conn)
	if err != nil {
		l.Err(err).Msg("database migration failed")
		_ = conn.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	l.Debug().Int("migrations_applied", applied).Msg("database ready")
	return &DB{DB: conn}, nil
}

// sqliteDSN builds a file: URI for path. Each path segment is escaped so a
// "?", "#" or "%" in a directory or file name is not read as URI syntax.
func sqliteDSN(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	q := url.Values{}
	q.Set("_busy_timeout", strconv.Itoa(busyTimeoutMillis))
	q.Set("_synchronous", "FULL")

	u := url.URL{Scheme: "file", Opaque: strings.Join(segments, "/"), RawQuery: q.Encode()}
	return u.String()
}

func ensurePrivateFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
