// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/utils"
)

// auth is an HTTP middleware that enforces HTTP Basic authentication.
//
// The username is the account's email address. Credentials are verified via
// [service.AuthService.Authenticate]; on success the account (without its
// password hash) is stored in the request context with
// [utils.ContextWithUser] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 and
// {"message": "Access Denied: <reason>"} when:
//   - the header is absent or is not Basic credentials,
//   - no account has the given email address,
//   - the password does not match.
//
// Storage failures during the lookup are answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, ok := r.BasicAuth()
		if !ok {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			denyAccess(w, reasonAuthHeaderNotFound)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				denyAccess(w, reasonUserNotFound+email)
			case errors.Is(err, service.ErrWrongPassword):
				denyAccess(w, reasonAuthenticationError+email)
			default:
				log.Err(err).Msg("error occurred during authentication")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithUser(ctx, user)))
	})
}

func denyAccess(w http.ResponseWriter, reason string) {
	utils.WriteMessage(w, accessDeniedPrefix+reason, http.StatusUnauthorized)
}
