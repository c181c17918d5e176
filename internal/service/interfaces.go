// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// AuthService verifies credentials and registers accounts.
type AuthService interface {
	// Authenticate checks an email/password pair against the stored bcrypt
	// hash and returns the account without its password.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	// RegisterUser hashes the password, enforces email uniqueness and
	// persists the account. An empty registration is handed to storage as is.
	RegisterUser(ctx context.Context, registration models.UserRegistration) (models.User, error)
}

// CourseService reads and mutates courses. Mutations take the acting
// account and refuse to touch courses it does not own.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.CourseWithOwner, error)
	// GetCourse returns a collection holding zero or one course.
	GetCourse(ctx context.Context, id int64) ([]models.CourseWithOwner, error)
	CreateCourse(ctx context.Context, owner models.User, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, user models.User, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, user models.User, id int64) error
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
