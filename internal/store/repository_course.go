// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/models"
)

// courseRepository is the SQL-backed implementation of [CourseRepository].
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by db.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if err := validateCourse(course); err != nil {
		log.Debug().Err(err).Str("func", "*courseRepository.CreateCourse").Msg("course failed validation")
		return models.Course{}, err
	}

	query, args, err := buildCreateCourseQuery(r.db.builder, course).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&course.ID); err != nil {
		if translated := r.db.translate(err); translated != err {
			log.Debug().Err(err).Str("func", "*courseRepository.CreateCourse").Msg("insert rejected by constraint")
			return models.Course{}, translated
		}
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

func (r *courseRepository) FindCourseByID(ctx context.Context, id int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCourseByIDQuery(r.db.builder, id).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var course models.Course
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, ErrCourseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error scanning course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return course, nil
}

func (r *courseRepository) ListCourses(ctx context.Context, ids ...int64) ([]models.CourseWithOwner, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesQuery(r.db.builder, ids...).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.CourseWithOwner, 0)
	for rows.Next() {
		var c models.CourseWithOwner
		if err = rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.EstimatedTime,
			&c.MaterialsNeeded,
			&c.UserID,
			&c.UserDetails.ID,
			&c.UserDetails.FirstName,
			&c.UserDetails.LastName,
			&c.UserDetails.EmailAddress,
		); err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning course")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		courses = append(courses, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, update models.CourseUpdate) error {
	log := logger.FromContext(ctx)

	if err := validateCourseUpdate(update); err != nil {
		log.Debug().Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("update failed validation")
		return err
	}

	affected, err := r.db.execStatement(ctx, buildUpdateCourseQuery(r.db.builder, update))
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Int64("course_id", update.ID).Msg("error updating course")
		return err
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func (r *courseRepository) DeleteCourse(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := r.db.execStatement(ctx, buildDeleteCourseQuery(r.db.builder, id))
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Int64("course_id", id).Msg("error deleting course")
		return err
	}
	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}
