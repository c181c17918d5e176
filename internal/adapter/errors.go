// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is returned for every non-2xx answer. It matches one of the
// sentinel errors above via [errors.Is].
type ResponseError struct {
	StatusCode int
	Body       string

	// Messages holds the validation messages of a 400 {"errors": [...]}
	// answer, or the single message of {"error": ...} and {"message": ...}.
	Messages []string

	err error
}

func (e *ResponseError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s (http %d)", e.err, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.err, e.StatusCode, e.Body)
}

func (e *ResponseError) Unwrap() error {
	return e.err
}
