// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmailAlreadyExists:  http.StatusBadRequest,
	service.ErrUserNotFound:        http.StatusUnauthorized,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrNotCourseOwner:      http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrCourseNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messenger is implemented by the validation errors of the store and
// validators packages.
type messenger interface {
	Messages() []string
}

// writeError answers with the response shape that belongs to err:
//   - validation errors → 400 {"errors": [...]}
//   - duplicate email → 400 {"error": "..."}
//   - 403 and 404 → empty body
//   - anything else → status text as plain text
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr messenger
	if errors.As(err, &vErr) {
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteErrors(w, vErr.Messages())
		return
	}

	if errors.Is(err, service.ErrEmailAlreadyExists) || errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Err(err).Msg("email already exists")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgEmailAlreadyExists}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	switch status {
	case http.StatusForbidden, http.StatusNotFound:
		log.Debug().Err(err).Int("status", status).Send()
		w.WriteHeader(status)
	case http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(status), status)
	default:
		log.Debug().Err(err).Int("status", status).Send()
		http.Error(w, http.StatusText(status), status)
	}
}
