// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const routeNotFoundMessage = "Route Not Found"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.createUser)
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{id}", h.getCourse)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users", h.getCurrentUser)
		r.Post("/courses", h.createCourse)
		r.Put("/courses/{id}", h.updateCourse)
		r.Delete("/courses/{id}", h.deleteCourse)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, routeNotFoundMessage, http.StatusNotFound)
}
