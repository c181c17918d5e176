// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Course is a single course offered by a user.
//
// UserID is the owning account; it is set from the authenticated caller on
// creation and cannot be changed through the API afterwards.
type Course struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// EstimatedTime and MaterialsNeeded are optional and serialized as null
	// when absent.
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	UserID int64 `json:"userId"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseWithOwner is the read representation of a course: the course itself
// plus its owning account (password excluded) under "userDetails".
type CourseWithOwner struct {
	Course
	UserDetails User `json:"userDetails"`
}

// CourseUpdate describes a change to an existing course.
// Nil fields are left untouched. The owner cannot be changed.
type CourseUpdate struct {
	// ID is taken from the request path, never from the body.
	ID int64 `json:"-"`

	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// ClearEstimatedTime and ClearMaterialsNeeded set the column to NULL.
	// They are set when the payload carries an explicit null and are ignored
	// when the matching value is non-nil.
	ClearEstimatedTime   bool `json:"-"`
	ClearMaterialsNeeded bool `json:"-"`
}

// IsEmpty reports whether the update carries no field at all.
func (u CourseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.EstimatedTime == nil && u.MaterialsNeeded == nil &&
		!u.ClearEstimatedTime && !u.ClearMaterialsNeeded
}

// UnmarshalJSON decodes the payload and records which optional fields were
// sent as null.
func (u *CourseUpdate) UnmarshalJSON(data []byte) error {
	type courseUpdate CourseUpdate

	var decoded courseUpdate
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return err
	}
	decoded.ClearEstimatedTime = isJSONNull(present, "estimatedTime")
	decoded.ClearMaterialsNeeded = isJSONNull(present, "materialsNeeded")

	decoded.ID = u.ID
	*u = CourseUpdate(decoded)
	return nil
}

// MarshalJSON writes only the fields the update sets. Cleared optional
// fields are written as null.
func (u CourseUpdate) MarshalJSON() ([]byte, error) {
	body := make(map[string]*string, 4)

	if u.Title != nil {
		body["title"] = u.Title
	}
	if u.Description != nil {
		body["description"] = u.Description
	}
	if u.EstimatedTime != nil || u.ClearEstimatedTime {
		body["estimatedTime"] = u.EstimatedTime
	}
	if u.MaterialsNeeded != nil || u.ClearMaterialsNeeded {
		body["materialsNeeded"] = u.MaterialsNeeded
	}

	return json.Marshal(body)
}

func isJSONNull(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	return ok && string(bytes.TrimSpace(raw)) == "null"
}
