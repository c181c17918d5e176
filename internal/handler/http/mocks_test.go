// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
	registerUserFn func(ctx context.Context, registration models.UserRegistration) (models.User, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	return m.registerUserFn(ctx, registration)
}

// mockCourseService implements service.CourseService for unit tests.
type mockCourseService struct {
	listCoursesFn  func(ctx context.Context) ([]models.CourseWithOwner, error)
	getCourseFn    func(ctx context.Context, id int64) ([]models.CourseWithOwner, error)
	createCourseFn func(ctx context.Context, owner models.User, course models.Course) (models.Course, error)
	updateCourseFn func(ctx context.Context, user models.User, update models.CourseUpdate) error
	deleteCourseFn func(ctx context.Context, user models.User, id int64) error
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	return m.listCoursesFn(ctx)
}

func (m *mockCourseService) GetCourse(ctx context.Context, id int64) ([]models.CourseWithOwner, error) {
	return m.getCourseFn(ctx, id)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, owner models.User, course models.Course) (models.Course, error) {
	return m.createCourseFn(ctx, owner, course)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, user models.User, update models.CourseUpdate) error {
	return m.updateCourseFn(ctx, user, update)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, user models.User, id int64) error {
	return m.deleteCourseFn(ctx, user, id)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// testUser is the account every authenticated test request resolves to.
var testUser = models.User{ID: 1, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"}

// acceptAll authenticates every request as testUser.
func acceptAll() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(context.Context, string, string) (models.User, error) {
			return testUser, nil
		},
	}
}

// newTestHandler builds a Handler over the given services. Nil services are
// replaced by mocks that fail the test when called.
func newTestHandler(t *testing.T, auth service.AuthService, courses service.CourseService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{
			authenticateFn: func(context.Context, string, string) (models.User, error) {
				t.Fatal("unexpected Authenticate call")
				return models.User{}, nil
			},
			registerUserFn: func(context.Context, models.UserRegistration) (models.User, error) {
				t.Fatal("unexpected RegisterUser call")
				return models.User{}, nil
			},
		}
	}
	if courses == nil {
		courses = &mockCourseService{}
	}

	return NewHandler(&service.Services{
		AuthService:    auth,
		CourseService:  courses,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}
