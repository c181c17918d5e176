// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPCourseAPI].
type HTTPClientConfig struct {
	// BaseURL is the server address, e.g. "http://localhost:5000" or
	// "localhost:5000".
	BaseURL string
	Timeout time.Duration
}

type httpCourseAPI struct {
	client *resty.Client

	mu       sync.RWMutex
	email    string
	password string

	logger *logger.Logger
}

// NewHTTPCourseAPI constructs an HTTP implementation of [CourseAPI].
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPCourseAPI(cfg HTTPClientConfig, logger *logger.Logger) (CourseAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpCourseAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCourseAPI) SetCredentials(email, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.email, h.password = email, password
}

func (h *httpCourseAPI) RegisterUser(ctx context.Context, registration models.UserRegistration) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		Post("/users")
	if err != nil {
		return "", fmt.Errorf("register user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.Header().Get("Location"), nil
}

func (h *httpCourseAPI) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpCourseAPI) ListCourses(ctx context.Context) ([]models.CourseWithOwner, error) {
	var body models.CoursesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Courses, nil
}

func (h *httpCourseAPI) GetCourse(ctx context.Context, id int64) ([]models.CourseWithOwner, error) {
	var body models.CourseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/courses/{id}")
	if err != nil {
		return nil, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Course, nil
}

func (h *httpCourseAPI) CreateCourse(ctx context.Context, course models.Course) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(course).
		Post("/courses")
	if err != nil {
		return "", fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.Header().Get("Location"), nil
}

func (h *httpCourseAPI) UpdateCourse(ctx context.Context, id int64, update models.CourseUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Put("/courses/{id}")
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCourseAPI) DeleteCourse(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/courses/{id}")
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCourseAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// authedRequest attaches the stored Basic credentials. Without credentials
// the request goes out unauthenticated and the server answers 401.
func (h *httpCourseAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	email, password := h.email, h.password
	h.mu.RUnlock()

	if email != "" || password != "" {
		req.SetBasicAuth(email, password)
	} else {
		h.logger.Debug().Msg("no credentials set, sending unauthenticated request")
	}
	return req
}
