// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if courses == nil {
		courses = []models.CourseWithOwner{}
	}

	utils.WriteJSON(w, models.CoursesResponse{Courses: courses}, http.StatusOK)
}

// getCourse answers with a collection of zero or one course. A non-numeric
// id matches nothing.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courses := []models.CourseWithOwner{}

	if id, ok := courseIDParam(r); ok {
		found, err := h.services.CourseService.GetCourse(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if found != nil {
			courses = found
		}
	}

	utils.WriteJSON(w, models.CourseResponse{Course: courses}, http.StatusOK)
}

// createCourse stores a course owned by the authenticated account.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var course models.Course
	if err := decodeJSON(r, &course); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if _, err := h.services.CourseService.CreateCourse(ctx, user, course); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/courses")
	w.WriteHeader(http.StatusCreated)
}

// updateCourse applies the payload to a course the caller owns.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	id, ok := courseIDParam(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var update models.CourseUpdate
	if err := decodeJSON(r, &update); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	update.ID = id

	if err := h.services.CourseService.UpdateCourse(ctx, user, update); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteCourse removes a course the caller owns.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	id, ok := courseIDParam(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.services.CourseService.DeleteCourse(ctx, user, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
