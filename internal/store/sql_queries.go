// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-course-api/models"
	"github.com/Masterminds/squirrel"
)

const (
	usersTable   = "users"
	coursesTable = "courses"
)

var (
	userColumns   = []string{"id", "first_name", "last_name", "email_address", "password"}
	courseColumns = []string{"id", "title", "description", "estimated_time", "materials_needed", "user_id"}

	courseWithOwnerColumns = []string{
		"c.id", "c.title", "c.description", "c.estimated_time", "c.materials_needed", "c.user_id",
		"u.id", "u.first_name", "u.last_name", "u.email_address",
	}
)

// buildCreateUserQuery renders the INSERT for a new account.
func buildCreateUserQuery(b squirrel.StatementBuilderType, user models.User) squirrel.InsertBuilder {
	return b.Insert(usersTable).
		Columns("first_name", "last_name", "email_address", "password").
		Values(user.FirstName, user.LastName, user.EmailAddress, user.Password).
		Suffix("RETURNING id")
}

// buildFindUserByEmailQuery renders the lookup used by authentication.
func buildFindUserByEmailQuery(b squirrel.StatementBuilderType, email string) squirrel.SelectBuilder {
	return b.Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"email_address": email}).
		Limit(1)
}

// buildCreateCourseQuery renders the INSERT for a new course.
func buildCreateCourseQuery(b squirrel.StatementBuilderType, course models.Course) squirrel.InsertBuilder {
	return b.Insert(coursesTable).
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID).
		Suffix("RETURNING id")
}

// buildFindCourseByIDQuery renders a single-course lookup without the owner.
func buildFindCourseByIDQuery(b squirrel.StatementBuilderType, id int64) squirrel.SelectBuilder {
	return b.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"id": id})
}

// buildListCoursesQuery renders the course listing with owners joined in.
// With no ids every course is selected.
func buildListCoursesQuery(b squirrel.StatementBuilderType, ids ...int64) squirrel.SelectBuilder {
	q := b.Select(courseWithOwnerColumns...).
		From(coursesTable + " c").
		Join(usersTable + " u ON u.id = c.user_id").
		OrderBy("c.id")

	if len(ids) > 0 {
		q = q.Where(squirrel.Eq{"c.id": ids})
	}

	return q
}

// buildUpdateCourseQuery dynamically builds the UPDATE from the set fields of
// update. Cleared optional fields are set to NULL. updated_at is always
// refreshed, so an empty update still touches the row and reports whether it
// exists.
func buildUpdateCourseQuery(b squirrel.StatementBuilderType, update models.CourseUpdate) squirrel.UpdateBuilder {
	q := b.Update(coursesTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP"))

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Description != nil {
		q = q.Set("description", *update.Description)
	}
	switch {
	case update.EstimatedTime != nil:
		q = q.Set("estimated_time", *update.EstimatedTime)
	case update.ClearEstimatedTime:
		q = q.Set("estimated_time", nil)
	}
	switch {
	case update.MaterialsNeeded != nil:
		q = q.Set("materials_needed", *update.MaterialsNeeded)
	case update.ClearMaterialsNeeded:
		q = q.Set("materials_needed", nil)
	}

	return q.Where(squirrel.Eq{"id": update.ID})
}

// buildDeleteCourseQuery renders the DELETE for one course.
func buildDeleteCourseQuery(b squirrel.StatementBuilderType, id int64) squirrel.DeleteBuilder {
	return b.Delete(coursesTable).Where(squirrel.Eq{"id": id})
}
