// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	sentinel, ok := statusErrors[resp.StatusCode()]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Messages:   bodyMessages(body),
		err:        sentinel,
	}
}

// bodyMessages extracts the human-readable messages of a JSON error body.
func bodyMessages(body string) []string {
	var payload struct {
		Errors  []string `json:"errors"`
		Error   string   `json:"error"`
		Message string   `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil
	}

	switch {
	case len(payload.Errors) > 0:
		return payload.Errors
	case payload.Error != "":
		return []string{payload.Error}
	case payload.Message != "":
		return []string{payload.Message}
	}
	return nil
}
