// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/migrations"
	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
)

const sqliteMemory = ":memory:"

// NewConnectSQLite opens a SQLite database ("sqlite://path" or
// "sqlite://:memory:") with foreign keys enforced.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path := strings.TrimPrefix(cfg.DSN, config.SchemeSQLite)
	if path == "" {
		path = sqliteMemory
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// every connection to :memory: is a separate database
	if path == sqliteMemory {
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:              conn,
		dialect:         migrations.DialectSQLite,
		builder:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		errorTranslator: sqliteErrorTranslator{},
		logger:          log,
	}
}

// sqliteErrorTranslator implements [ErrorTranslator] for go-sqlite3 errors.
// SQLite reports the violated constraint only in the message text, e.g.
// "CHECK constraint failed: courses_title_present" or
// "NOT NULL constraint failed: courses.title".
type sqliteErrorTranslator struct{}

func (sqliteErrorTranslator) Translate(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return err
	}

	name := constraintName(sqliteErr.Error())

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		if name == "users.email_address" {
			return ErrEmailAlreadyExists
		}
		return constraintViolation(name)
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return constraintViolation(name)
	case sqlite3.ErrConstraintForeignKey:
		return constraintViolation("courses.user_id")
	}

	return err
}

// constraintName extracts what follows "constraint failed: " in a SQLite
// error message.
func constraintName(msg string) string {
	const marker = "constraint failed: "
	if i := strings.Index(msg, marker); i >= 0 {
		return strings.TrimSpace(msg[i+len(marker):])
	}
	return msg
}
