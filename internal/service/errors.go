// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserNotFound is returned by Authenticate when no account has the
	// given email address.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword is returned by Authenticate on a hash mismatch.
	ErrWrongPassword = errors.New("wrong password")

	ErrEmailAlreadyExists = errors.New("this email id already exists")

	// ErrNotCourseOwner is returned when the acting account does not own
	// the course it tries to change.
	ErrNotCourseOwner = errors.New("user is not the course owner")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
