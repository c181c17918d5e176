// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Reasons reported in the body of a 401 response as
// {"message": "Access Denied: <reason>"}.
const (
	accessDeniedPrefix        = "Access Denied: "
	reasonAuthHeaderNotFound  = "Auth header not found"
	reasonUserNotFound        = "User not found for username: "
	reasonAuthenticationError = "Authentication failure for username: "
)

// Bodies written by the request handlers.
const (
	msgInvalidJSON        = "Invalid JSON was passed"
	msgEmailAlreadyExists = "This Email Id already exists!"
)

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// request carries no usable Basic credentials.
	ErrEmptyAuthorizationHeader = errors.New("empty or malformed `Authorization` header")

	// ErrNoUserInContext is returned when a protected handler runs without
	// an authenticated account in its context.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
