// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT into "users" violates
	// the unique email address constraint.
	ErrEmailAlreadyExists = errors.New("email address already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCourseNotFound is returned when a course lookup, update or delete
	// targets an ID that does not exist.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. They wrap the driver error and are
// never translated into client-facing statuses other than 500.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
