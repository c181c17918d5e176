// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (c *courseService) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	return c.courseRepository.ListCourses(ctx)
}

func (c *courseService) GetCourse(ctx context.Context, id int64) ([]models.CourseWithOwner, error) {
	return c.courseRepository.ListCourses(ctx, id)
}

// CreateCourse stores course as owned by owner, whatever owner or ID the
// payload carried.
func (c *courseService) CreateCourse(ctx context.Context, owner models.User, course models.Course) (models.Course, error) {
	course.ID = 0
	course.UserID = owner.ID

	created, err := c.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("course_id", created.ID).Int64("user_id", owner.ID).Msg("course created")
	return created, nil
}

// UpdateCourse loads the course, checks ownership, validates the payload and
// only then applies it. Errors come back in that order.
func (c *courseService) UpdateCourse(ctx context.Context, user models.User, update models.CourseUpdate) error {
	if _, err := c.ownedCourse(ctx, user, update.ID); err != nil {
		return err
	}

	if err := c.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("course_id", update.ID).Msg("course update failed validation")
		return err
	}

	if err := c.courseRepository.UpdateCourse(ctx, update); err != nil {
		return fmt.Errorf("course update ended with error: %w", err)
	}

	return nil
}

func (c *courseService) DeleteCourse(ctx context.Context, user models.User, id int64) error {
	if _, err := c.ownedCourse(ctx, user, id); err != nil {
		return err
	}

	if err := c.courseRepository.DeleteCourse(ctx, id); err != nil {
		return fmt.Errorf("course deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("course_id", id).Int64("user_id", user.ID).Msg("course deleted")
	return nil
}

// ownedCourse loads the course and returns ErrNotCourseOwner unless user
// owns it.
func (c *courseService) ownedCourse(ctx context.Context, user models.User, id int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	course, err := c.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("course search by id failed: %w", err)
	}

	if course.UserID != user.ID {
		log.Warn().Int64("course_id", id).Int64("user_id", user.ID).Int64("owner_id", course.UserID).Msg("user is not the course owner")
		return models.Course{}, ErrNotCourseOwner
	}

	return course, nil
}
