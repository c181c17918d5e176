// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCourseUpdate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want CourseUpdate
	}{
		{
			name: "absent optional fields are untouched",
			body: `{"title":"T","description":"D"}`,
			want: CourseUpdate{Title: strPtr("T"), Description: strPtr("D")},
		},
		{
			name: "explicit null clears",
			body: `{"title":"T","description":"D","estimatedTime":null,"materialsNeeded": null}`,
			want: CourseUpdate{Title: strPtr("T"), Description: strPtr("D"), ClearEstimatedTime: true, ClearMaterialsNeeded: true},
		},
		{
			name: "values are set",
			body: `{"estimatedTime":"5h","materialsNeeded":"wood"}`,
			want: CourseUpdate{EstimatedTime: strPtr("5h"), MaterialsNeeded: strPtr("wood")},
		},
		{
			name: "null title is only missing",
			body: `{"title":null}`,
			want: CourseUpdate{},
		},
		{
			name: "unknown fields are ignored",
			body: `{"userId":2,"id":9}`,
			want: CourseUpdate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got CourseUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourseUpdate_UnmarshalJSON_KeepsID(t *testing.T) {
	got := CourseUpdate{ID: 7}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"T"}`), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestCourseUpdate_UnmarshalJSON_NotAnObject(t *testing.T) {
	var got CourseUpdate
	assert.Error(t, json.Unmarshal([]byte(`["title"]`), &got))
}

func TestCourseUpdate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		update CourseUpdate
		want   string
	}{
		{name: "empty", update: CourseUpdate{ID: 3}, want: `{}`},
		{name: "set fields only", update: CourseUpdate{Title: strPtr("T"), EstimatedTime: strPtr("5h")}, want: `{"title":"T","estimatedTime":"5h"}`},
		{name: "cleared fields as null", update: CourseUpdate{ClearEstimatedTime: true, ClearMaterialsNeeded: true}, want: `{"estimatedTime":null,"materialsNeeded":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.update)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestCourseUpdate_RoundTrip(t *testing.T) {
	in := CourseUpdate{Title: strPtr("T"), Description: strPtr("D"), ClearEstimatedTime: true}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out CourseUpdate
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCourseUpdate_IsEmpty(t *testing.T) {
	assert.True(t, CourseUpdate{ID: 1}.IsEmpty())
	assert.False(t, CourseUpdate{ClearMaterialsNeeded: true}.IsEmpty())
	assert.False(t, CourseUpdate{Title: strPtr("")}.IsEmpty())
}
