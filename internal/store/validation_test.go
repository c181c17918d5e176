// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "joe@smith.com", want: true},
		{in: "joe.smith+tag@mail.example.org", want: true},
		{in: "joe", want: false},
		{in: "joe@", want: false},
		{in: "Joe <joe@smith.com>", want: false},
		{in: " joe@smith.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, isEmail(tt.in))
		})
	}
}

func TestValidateCourseUpdate_OnlySetFields(t *testing.T) {
	assert.NoError(t, validateCourseUpdate(models.CourseUpdate{}))
	assert.NoError(t, validateCourseUpdate(models.CourseUpdate{EstimatedTime: strPtr("")}))

	err := validateCourseUpdate(models.CourseUpdate{Title: strPtr(""), Description: strPtr("")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "validation error: "+msgTitleRequired+"; "+msgDescriptionRequired)
}

func TestConstraintViolation_UnknownName(t *testing.T) {
	err := constraintViolation("mystery")
	assert.Equal(t, []string{"Constraint violated: mystery"}, err.Messages())
}

func TestBuildUpdateCourseQuery_AllFields(t *testing.T) {
	db := newSQLiteDB(nil, nil)

	query, args, err := buildUpdateCourseQuery(db.builder, models.CourseUpdate{
		ID:              9,
		Title:           strPtr("t"),
		Description:     strPtr("d"),
		EstimatedTime:   strPtr("1h"),
		MaterialsNeeded: strPtr("m"),
	}).ToSql()

	assert.NoError(t, err)
	assert.Equal(t,
		"UPDATE courses SET updated_at = CURRENT_TIMESTAMP, title = ?, description = ?, estimated_time = ?, materials_needed = ? WHERE id = ?",
		query)
	assert.Equal(t, []any{"t", "d", "1h", "m", int64(9)}, args)
}

func TestBuildUpdateCourseQuery_ClearsOptionalFields(t *testing.T) {
	db := newSQLiteDB(nil, nil)

	tests := []struct {
		name      string
		update    models.CourseUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "explicit nulls",
			update:    models.CourseUpdate{ID: 3, ClearEstimatedTime: true, ClearMaterialsNeeded: true},
			wantQuery: "UPDATE courses SET updated_at = CURRENT_TIMESTAMP, estimated_time = ?, materials_needed = ? WHERE id = ?",
			wantArgs:  []any{nil, nil, int64(3)},
		},
		{
			name:      "value wins over clear",
			update:    models.CourseUpdate{ID: 3, EstimatedTime: strPtr("2h"), ClearEstimatedTime: true},
			wantQuery: "UPDATE courses SET updated_at = CURRENT_TIMESTAMP, estimated_time = ? WHERE id = ?",
			wantArgs:  []any{"2h", int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateCourseQuery(db.builder, tt.update).ToSql()

			assert.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
