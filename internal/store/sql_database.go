// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/migrations"
	"github.com/Masterminds/squirrel"
)

// DB is a database connection pool together with the dialect-specific pieces
// the repositories need: the squirrel statement builder (placeholder format),
// the driver error translator and the goose dialect name.
type DB struct {
	*sql.DB

	dialect         string
	builder         squirrel.StatementBuilderType
	errorTranslator ErrorTranslator
	logger          *logger.Logger
}

// NewDB opens the database selected by the DSN scheme.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, config.SchemePostgres), strings.HasPrefix(cfg.DSN, config.SchemePostgreSQL):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, config.SchemeSQLite):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// translate passes err through the dialect's translator.
func (db *DB) translate(err error) error {
	if err == nil || db.errorTranslator == nil {
		return err
	}
	return db.errorTranslator.Translate(err)
}

// execStatement renders a squirrel statement, executes it and returns the
// number of affected rows. Driver errors are translated first; anything left
// untranslated is wrapped in [ErrExecutingStatement].
func (db *DB) execStatement(ctx context.Context, stmt squirrel.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		if translated := db.translate(err); translated != err {
			return 0, translated
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
