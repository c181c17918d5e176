// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// withCourseID routes the request as chi would for /courses/{id}.
func withCourseID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authenticated attaches testUser to the request context.
func authenticated(r *http.Request) *http.Request {
	return r.WithContext(utils.ContextWithUser(r.Context(), testUser))
}

var sampleCourse = models.CourseWithOwner{
	Course: models.Course{
		ID:            1,
		Title:         "Build a Basic Bookcase",
		Description:   "High-end furniture projects are great to dream about.",
		EstimatedTime: strPtr("12 hours"),
		UserID:        testUser.ID,
	},
	UserDetails: testUser,
}

const sampleCourseJSON = `{
	"id": 1,
	"title": "Build a Basic Bookcase",
	"description": "High-end furniture projects are great to dream about.",
	"estimatedTime": "12 hours",
	"materialsNeeded": null,
	"userId": 1,
	"userDetails": {"id": 1, "firstName": "Joe", "lastName": "Smith", "emailAddress": "joe@smith.com"}
}`

func TestListCourses(t *testing.T) {
	tests := []struct {
		name     string
		courses  []models.CourseWithOwner
		wantBody string
	}{
		{name: "courses with owners", courses: []models.CourseWithOwner{sampleCourse}, wantBody: `{"courses":[` + sampleCourseJSON + `]}`},
		{name: "empty", courses: nil, wantBody: `{"courses":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil, &mockCourseService{
				listCoursesFn: func(context.Context) ([]models.CourseWithOwner, error) { return tt.courses, nil },
			})
			rec := httptest.NewRecorder()

			h.listCourses(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestListCourses_Error(t *testing.T) {
	h := newTestHandler(t, nil, &mockCourseService{
		listCoursesFn: func(context.Context) ([]models.CourseWithOwner, error) { return nil, store.ErrExecutingQuery },
	})
	rec := httptest.NewRecorder()

	h.listCourses(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetCourse(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		found      []models.CourseWithOwner
		wantLookup bool
		wantBody   string
	}{
		{name: "found", id: "1", found: []models.CourseWithOwner{sampleCourse}, wantLookup: true, wantBody: `{"course":[` + sampleCourseJSON + `]}`},
		{name: "missing", id: "99", found: []models.CourseWithOwner{}, wantLookup: true, wantBody: `{"course":[]}`},
		{name: "non-numeric id", id: "abc", wantBody: `{"course":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			looked := false
			h := newTestHandler(t, nil, &mockCourseService{
				getCourseFn: func(_ context.Context, id int64) ([]models.CourseWithOwner, error) {
					looked = true
					return tt.found, nil
				},
			})
			rec := httptest.NewRecorder()

			h.getCourse(rec, withCourseID(httptest.NewRequest(http.MethodGet, "/courses/"+tt.id, nil), tt.id))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantLookup, looked)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCreateCourse(t *testing.T) {
	var gotOwner models.User
	var gotCourse models.Course
	h := newTestHandler(t, nil, &mockCourseService{
		createCourseFn: func(_ context.Context, owner models.User, course models.Course) (models.Course, error) {
			gotOwner, gotCourse = owner, course
			course.ID = 5
			return course, nil
		},
	})

	body := `{"title":"New Course","description":"My course description","userId":77}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.createCourse(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/courses", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, testUser.ID, gotOwner.ID)
	assert.Equal(t, "New Course", gotCourse.Title)
}

func TestCreateCourse_StorageValidation(t *testing.T) {
	h := newTestHandler(t, nil, &mockCourseService{
		createCourseFn: func(context.Context, models.User, models.Course) (models.Course, error) {
			return models.Course{}, &store.ValidationError{Errors: []string{`Please provide a value for "title"`, `Please provide a value for "description"`}}
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.createCourse(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\""]}`, rec.Body.String())
}

func TestCreateCourse_MalformedJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	req := authenticated(httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`[`)))
	rec := httptest.NewRecorder()

	h.createCourse(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCourse(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		serviceErr error
		wantCalled bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			id:         "1",
			body:       `{"title":"Updated","description":"Updated description","userId":2}`,
			wantCalled: true,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing course",
			id:         "99",
			body:       `{"title":"t","description":"d"}`,
			serviceErr: store.ErrCourseNotFound,
			wantCalled: true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			body:       `{}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not the owner",
			id:         "1",
			body:       `{"title":"t","description":"d"}`,
			serviceErr: service.ErrNotCourseOwner,
			wantCalled: true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "validation failure",
			id:         "1",
			body:       `{}`,
			serviceErr: &validators.ValidationError{Errors: []string{validators.MsgTitleRequired, validators.MsgDescriptionRequired}},
			wantCalled: true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["Please provide a value for \"Title\"","Please provide a value for \"Description\""]}`,
		},
		{
			name:       "malformed JSON",
			id:         "1",
			body:       `{"title"`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			var gotUpdate models.CourseUpdate
			h := newTestHandler(t, nil, &mockCourseService{
				updateCourseFn: func(_ context.Context, user models.User, update models.CourseUpdate) error {
					called = true
					gotUpdate = update
					assert.Equal(t, testUser.ID, user.ID)
					return tt.serviceErr
				},
			})

			req := httptest.NewRequest(http.MethodPut, "/courses/"+tt.id, strings.NewReader(tt.body))
			req = authenticated(withCourseID(req, tt.id))
			rec := httptest.NewRecorder()

			h.updateCourse(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else if tt.wantStatus != http.StatusBadRequest {
				assert.Empty(t, rec.Body.String())
			}
			if tt.name == "updated" {
				assert.Equal(t, int64(1), gotUpdate.ID)
				require.NotNil(t, gotUpdate.Title)
				assert.Equal(t, "Updated", *gotUpdate.Title)
			}
		})
	}
}

func TestUpdateCourse_ExplicitNullClears(t *testing.T) {
	var gotUpdate models.CourseUpdate
	h := newTestHandler(t, nil, &mockCourseService{
		updateCourseFn: func(_ context.Context, _ models.User, update models.CourseUpdate) error {
			gotUpdate = update
			return nil
		},
	})

	body := `{"title":"T","description":"D","estimatedTime":null}`
	req := httptest.NewRequest(http.MethodPut, "/courses/1", strings.NewReader(body))
	req = authenticated(withCourseID(req, "1"))
	rec := httptest.NewRecorder()

	h.updateCourse(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(1), gotUpdate.ID)
	assert.Nil(t, gotUpdate.EstimatedTime)
	assert.True(t, gotUpdate.ClearEstimatedTime)
	assert.False(t, gotUpdate.ClearMaterialsNeeded)
}

func TestDeleteCourse(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", id: "1", wantStatus: http.StatusNoContent},
		{name: "missing course", id: "1", serviceErr: store.ErrCourseNotFound, wantStatus: http.StatusNotFound},
		{name: "not the owner", id: "1", serviceErr: service.ErrNotCourseOwner, wantStatus: http.StatusForbidden},
		{name: "non-numeric id", id: "x", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil, &mockCourseService{
				deleteCourseFn: func(_ context.Context, _ models.User, id int64) error {
					assert.Equal(t, int64(1), id)
					return tt.serviceErr
				},
			})

			req := authenticated(withCourseID(httptest.NewRequest(http.MethodDelete, "/courses/"+tt.id, nil), tt.id))
			rec := httptest.NewRecorder()

			h.deleteCourse(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}
