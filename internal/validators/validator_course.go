// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Messages reported for a course update.
const (
	MsgTitleRequired       = `Please provide a value for "Title"`
	MsgDescriptionRequired = `Please provide a value for "Description"`
)

// CourseValidator implements [Validator] for course update payloads.
// Title and description must be present and non-empty; the remaining
// fields are optional.
type CourseValidator struct {
}

// NewCourseValidator constructs a new CourseValidator.
func NewCourseValidator() Validator {
	return &CourseValidator{}
}

// Validate dispatches on the value type. Supported: [models.CourseUpdate]
// and its pointer.
func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CourseUpdate:
		return v.validateCourseUpdate(ctx, value, fields...)
	case *models.CourseUpdate:
		if value == nil {
			return v.validateCourseUpdate(ctx, models.CourseUpdate{}, fields...)
		}
		return v.validateCourseUpdate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CourseValidator) validateCourseUpdate(_ context.Context, update models.CourseUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	vErr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(update.Title) {
				vErr.add(MsgTitleRequired)
			}
		case FieldDescription:
			if isBlank(update.Description) {
				vErr.add(MsgDescriptionRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return vErr.errOrNil()
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
