// Package api is the portal CLI's REST transport. All requests funnel
// through a single do method that attaches the bearer token, bounds the
// request duration, and maps failures onto the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// Client talks to the portal backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	mu    sync.RWMutex
	token string
}

// NewClient builds a Client against the given base URL. timeout bounds each
// individual request; exceeding it is reported as common.ErrTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// SetToken installs the session token attached to subsequent requests.
// An empty token returns the client to anonymous requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type errorResponse struct {
	Error string `json:"error"`
}

// do issues one request and decodes the response into out (when non-nil).
// Failures map onto the closed taxonomy:
//
//	timeout exceeded        -> common.ErrTimeout
//	transport failure       -> common.ErrNetwork
//	400                     -> common.ErrValidation
//	401                     -> common.ErrUnauthorized
//	403                     -> common.ErrForbidden
//	404                     -> common.ErrNotFound
//	other non-2xx           -> common.ErrServer
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return common.ErrTimeout
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return common.ErrTimeout
		}
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		msg := er.Error
		if msg == "" {
			msg = resp.Status
		}

		switch resp.StatusCode {
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %s", common.ErrValidation, msg)
		case http.StatusUnauthorized:
			return common.ErrUnauthorized
		case http.StatusForbidden:
			return common.ErrForbidden
		case http.StatusNotFound:
			return common.ErrNotFound
		default:
			return fmt.Errorf("%w: %s", common.ErrServer, msg)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode error: %v", common.ErrServer, err)
	}
	return nil
}

// Login exchanges credentials for a session token and the account behind it.
func (c *Client) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	req := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

// Me validates the installed token and returns the account it belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) TeacherProfile(ctx context.Context) (*models.TeacherProfile, error) {
	var p models.TeacherProfile
	if err := c.do(ctx, http.MethodGet, "/api/teachers/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateTeacherProfile(ctx context.Context, p *models.TeacherProfile) (*models.TeacherProfile, error) {
	var saved models.TeacherProfile
	if err := c.do(ctx, http.MethodPut, "/api/teacher-profile/update", p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) StudentProfile(ctx context.Context) (*models.StudentProfile, error) {
	var p models.StudentProfile
	if err := c.do(ctx, http.MethodGet, "/api/students/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateStudentProfile(ctx context.Context, p *models.StudentProfile) (*models.StudentProfile, error) {
	var saved models.StudentProfile
	if err := c.do(ctx, http.MethodPut, "/api/student-profile/update", p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) AdminProfile(ctx context.Context) (*models.AdminProfile, error) {
	var p models.AdminProfile
	if err := c.do(ctx, http.MethodGet, "/api/admin/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateAdminProfile(ctx context.Context, p *models.AdminProfile) (*models.AdminProfile, error) {
	var saved models.AdminProfile
	if err := c.do(ctx, http.MethodPut, "/api/admin/profile", p, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// MarkAttendance records one slot for one student on behalf of the logged-in
// teacher. classDate uses the YYYY-MM-DD wire format.
func (c *Client) MarkAttendance(ctx context.Context, studentID, classDate, subject string, present bool) (*models.AttendanceRecord, error) {
	req := map[string]any{
		"student_id": studentID,
		"class_date": classDate,
		"subject":    subject,
		"present":    present,
	}
	var rec models.AttendanceRecord
	if err := c.do(ctx, http.MethodPost, "/api/teachers/mark-attendance", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// MyAttendance returns the logged-in student's records with a summary.
func (c *Client) MyAttendance(ctx context.Context) ([]*models.AttendanceRecord, models.AttendanceSummary, error) {
	var resp struct {
		Records []*models.AttendanceRecord `json:"records"`
		Summary models.AttendanceSummary   `json:"summary"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/students/attendance", nil, &resp); err != nil {
		return nil, models.AttendanceSummary{}, err
	}
	return resp.Records, resp.Summary, nil
}

// ListStudents returns student profiles, optionally filtered by class.
func (c *Client) ListStudents(ctx context.Context, className string) ([]*models.StudentProfile, error) {
	path := "/api/teachers/students"
	if className != "" {
		path += "?class=" + url.QueryEscape(className)
	}
	var resp struct {
		Students []*models.StudentProfile `json:"students"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Students, nil
}

// Notices returns the public notice board, newest first.
func (c *Client) Notices(ctx context.Context) ([]*models.Notice, error) {
	var resp struct {
		Notices []*models.Notice `json:"notices"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notices", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notices, nil
}

// ListUsers returns all accounts (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]*models.User, error) {
	var resp struct {
		Users []*models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// ProvisionUser creates a new account plus its blank role profile (admin only).
func (c *Client) ProvisionUser(ctx context.Context, username, password, role, name string) (*models.User, error) {
	req := map[string]string{
		"username": username,
		"password": password,
		"role":     role,
		"name":     name,
	}
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// DeleteUser removes an account (admin only).
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), nil, nil)
}
