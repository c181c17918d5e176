// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the course API.
//
// [CourseAPI] hides the HTTP transport: it serializes payloads, attaches
// Basic credentials to protected calls and maps non-2xx answers to a
// [*ResponseError] that matches the sentinel errors of this package
// (e.g. [ErrForbidden] for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// CourseAPI is a client of every endpoint the server exposes.
type CourseAPI interface {
	// SetCredentials stores the email address and password sent as HTTP
	// Basic credentials with every protected request.
	SetCredentials(email, password string)

	// RegisterUser creates an account. It returns the Location header of
	// the 201 answer.
	RegisterUser(ctx context.Context, registration models.UserRegistration) (string, error)

	// CurrentUser returns the account the stored credentials belong to.
	CurrentUser(ctx context.Context) (models.User, error)

	// ListCourses returns every course together with its owner.
	ListCourses(ctx context.Context) ([]models.CourseWithOwner, error)

	// GetCourse returns a collection of zero or one course.
	GetCourse(ctx context.Context, id int64) ([]models.CourseWithOwner, error)

	// CreateCourse creates a course owned by the current account. It returns
	// the Location header of the 201 answer.
	CreateCourse(ctx context.Context, course models.Course) (string, error)

	// UpdateCourse changes a course owned by the current account.
	UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate) error

	// DeleteCourse removes a course owned by the current account.
	DeleteCourse(ctx context.Context, id int64) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
