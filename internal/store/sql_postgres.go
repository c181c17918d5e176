// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/migrations"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a pgx-backed connection pool and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newPostgresDB(conn, log), nil
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:              conn,
		dialect:         migrations.DialectPostgres,
		builder:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		errorTranslator: postgresErrorTranslator{},
		logger:          log,
	}
}

// postgresErrorTranslator implements [ErrorTranslator] for pgx errors.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type postgresErrorTranslator struct{}

func (postgresErrorTranslator) Translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == "users_email_address_key" {
			return ErrEmailAlreadyExists
		}
		return constraintViolation(pgErr.ConstraintName)
	case pgerrcode.NotNullViolation:
		return constraintViolation(pgErr.TableName + "." + pgErr.ColumnName)
	case pgerrcode.CheckViolation, pgerrcode.ForeignKeyViolation:
		return constraintViolation(pgErr.ConstraintName)
	}

	return err
}
