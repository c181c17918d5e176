// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once at construction. Its hash is compared
// against when no account matches, so unknown-user and wrong-password
// denials take the same time.
const dummyPassword = "course-api-dummy-password"

// authService is the concrete implementation of AuthService.
// It verifies HTTP Basic credentials against bcrypt hashes and registers
// new accounts through a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor used for new passwords.
	hashCost int

	// dummyHash is compared against when the account does not exist.
	dummyHash []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository. A zero cfg.PasswordHashCost selects [bcrypt.DefaultCost].
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy password: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       cost,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Authenticate verifies an email/password pair.
//
// Returns the account without its password hash or:
//   - ErrUserNotFound if no account has the email address.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// keep the timing of both denial paths equal
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		log.Warn().Str("username", email).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("username", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Str("username", email).Msg("authentication failure")
		return models.User{}, ErrWrongPassword
	}

	log.Info().Int64("id", foundUser.ID).Str("username", email).Msg("authentication successful")
	return foundUser.WithoutPassword(), nil
}

// RegisterUser creates a new account.
//
// An empty registration goes to the repository untouched so that its field
// validation reports every missing value. Otherwise a non-empty password is
// hashed with bcrypt and the email address must not be taken yet.
//
// Returns the persisted account (with a server-assigned ID) or:
//   - ErrEmailAlreadyExists if another account has the email address.
//   - ErrInvalidDataProvided if the password cannot be hashed.
//   - A wrapped storage error (see store.ValidationError).
func (a *authService) RegisterUser(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	log := logger.FromContext(ctx)

	user := registration.ToUser()

	if !registration.IsEmpty() {
		// a missing password stays empty and fails storage validation
		if registration.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), a.hashCost)
			if err != nil {
				log.Err(err).Str("email", registration.EmailAddress).Msg("password hashing failed")
				return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
			}
			user.Password = string(hash)
		}

		_, err := a.userRepository.FindUserByEmail(ctx, registration.EmailAddress)
		switch {
		case err == nil:
			log.Warn().Str("email", registration.EmailAddress).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		case !errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("email", registration.EmailAddress).Msg("user search by email failed")
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", registration.EmailAddress).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	return registeredUser.WithoutPassword(), nil
}
