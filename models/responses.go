// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CoursesResponse is the body of GET /courses.
type CoursesResponse struct {
	Courses []CourseWithOwner `json:"courses"`
}

// CourseResponse is the body of GET /courses/{id}.
// Course is a collection holding zero or one element.
type CourseResponse struct {
	Course []CourseWithOwner `json:"course"`
}

// ErrorsResponse carries a list of validation messages.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse carries a single error message (user-create conflicts).
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable message (authentication
// denials, unknown routes).
type MessageResponse struct {
	Message string `json:"message"`
}
