// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-course-api/models"
)

// ValidationError reports field-level problems found before or during a
// write. Errors holds one human-readable message per problem.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Errors, "; ")
}

// Messages returns the collected messages.
func (e *ValidationError) Messages() []string {
	return e.Errors
}

// Unwrap makes every ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Messages produced by model validation and by constraint translation.
const (
	msgFirstNameRequired   = `Please provide a value for "firstName"`
	msgLastNameRequired    = `Please provide a value for "lastName"`
	msgEmailRequired       = `Please provide a value for "emailAddress"`
	msgEmailInvalid        = `Please provide a valid email address`
	msgPasswordRequired    = `Please provide a value for "password"`
	msgTitleRequired       = `Please provide a value for "title"`
	msgDescriptionRequired = `Please provide a value for "description"`
	msgOwnerInvalid        = `Please provide a valid "userId"`
	msgConstraintViolated  = "Constraint violated: "
)

// constraintMessages maps constraint names and "table.column" pairs reported
// by the drivers to client-facing messages.
var constraintMessages = map[string]string{
	"users_first_name_present":    msgFirstNameRequired,
	"users_last_name_present":     msgLastNameRequired,
	"users_email_address_present": msgEmailRequired,
	"users_password_present":      msgPasswordRequired,
	"users.first_name":            msgFirstNameRequired,
	"users.last_name":             msgLastNameRequired,
	"users.email_address":         msgEmailRequired,
	"users.password":              msgPasswordRequired,

	"courses_title_present":       msgTitleRequired,
	"courses_description_present": msgDescriptionRequired,
	"courses.title":               msgTitleRequired,
	"courses.description":         msgDescriptionRequired,
	"courses.user_id":             msgOwnerInvalid,
	"courses_user_id_fkey":        msgOwnerInvalid,
}

// constraintViolation builds a ValidationError for a violated constraint.
func constraintViolation(name string) *ValidationError {
	if msg, ok := constraintMessages[name]; ok {
		return &ValidationError{Errors: []string{msg}}
	}
	return &ValidationError{Errors: []string{msgConstraintViolated + name}}
}

// validateUser runs the model-level checks an account must pass before it is
// inserted. All problems are collected.
func validateUser(user models.User) error {
	var errs []string

	if user.FirstName == "" {
		errs = append(errs, msgFirstNameRequired)
	}
	if user.LastName == "" {
		errs = append(errs, msgLastNameRequired)
	}
	switch {
	case user.EmailAddress == "":
		errs = append(errs, msgEmailRequired)
	case !isEmail(user.EmailAddress):
		errs = append(errs, msgEmailInvalid)
	}
	if user.Password == "" {
		errs = append(errs, msgPasswordRequired)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// validateCourse runs the model-level checks a new course must pass.
func validateCourse(course models.Course) error {
	var errs []string

	if course.Title == "" {
		errs = append(errs, msgTitleRequired)
	}
	if course.Description == "" {
		errs = append(errs, msgDescriptionRequired)
	}
	if course.UserID <= 0 {
		errs = append(errs, msgOwnerInvalid)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// validateCourseUpdate checks only the fields the update sets.
func validateCourseUpdate(update models.CourseUpdate) error {
	var errs []string

	if update.Title != nil && *update.Title == "" {
		errs = append(errs, msgTitleRequired)
	}
	if update.Description != nil && *update.Description == "" {
		errs = append(errs, msgDescriptionRequired)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// isEmail accepts a bare RFC 5322 address ("a@x.com"), not a display form
// ("A <a@x.com>").
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
