// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with its generated ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the account (password hash included) with the
	// given email address or [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CourseRepository persists courses.
type CourseRepository interface {
	// CreateCourse inserts a new course and returns it with its generated ID.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	// FindCourseByID returns the course or [ErrCourseNotFound].
	FindCourseByID(ctx context.Context, id int64) (models.Course, error)
	// ListCourses returns courses with their owners embedded, ordered by ID.
	// When ids are given only those courses are returned.
	ListCourses(ctx context.Context, ids ...int64) ([]models.CourseWithOwner, error)
	// UpdateCourse applies the non-nil fields of update.
	UpdateCourse(ctx context.Context, update models.CourseUpdate) error
	// DeleteCourse removes the course or returns [ErrCourseNotFound].
	DeleteCourse(ctx context.Context, id int64) error
}

// ErrorTranslator converts driver-specific errors into the sentinel errors
// and [*ValidationError] values of this package. Errors it does not
// recognise are returned unchanged.
type ErrorTranslator interface {
	Translate(err error) error
}
