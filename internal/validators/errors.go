// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every [*ValidationError].
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError collects every problem found in one validated value.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Errors, "; ")
}

// Messages returns the collected messages in the order they were found.
func (e *ValidationError) Messages() []string {
	return e.Errors
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// add records msg.
func (e *ValidationError) add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// errOrNil returns e when it holds at least one message.
func (e *ValidationError) errOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
