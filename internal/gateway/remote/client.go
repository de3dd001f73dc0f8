// Package remote talks to the workforce API over HTTP. It implements the
// identity provider and every record store port the workflows depend on.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce/internal/pkg/apperror"
	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
	"github.com/goccy/go-json"
)

const apiPrefix = "/api/v1"

// codeErrors maps API error codes back to the domain sentinels.
var codeErrors = map[string]error{
	response.CodeInvalidCredentials: identity.ErrInvalidCredentials,
	response.CodeSessionExpired:     identity.ErrSessionExpired,
	response.CodeEmailExists:        credential.ErrEmailExists,
	response.CodeAccountNotFound:    credential.ErrAccountNotFound,
	response.CodeProfileNotFound:    identity.ErrProfileNotFound,
	response.CodeProfileExists:      record.ErrProfileExists,
	response.CodeAlreadyCheckedIn:   attendance.ErrAlreadyCheckedIn,
	response.CodeNotCheckedIn:       attendance.ErrNotCheckedIn,
	response.CodeAlreadyCheckedOut:  attendance.ErrAlreadyCheckedOut,
	response.CodeAttendanceNotFound: attendance.ErrAttendanceNotFound,
	response.CodeLeaveNotFound:      leave.ErrLeaveRequestNotFound,
	response.CodeReportNotFound:     report.ErrReportNotFound,
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    json.RawMessage       `json:"data,omitempty"`
	Error   *response.ErrorDetail `json:"error,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenStore, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		tokens: tokens,
		logger: logger,
	}
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   interface{}
	token  string
}

// do sends c and decodes the data field into out. Every failure comes back
// as *apperror.RemoteError.
func (cl *Client) do(ctx context.Context, c call, out interface{}) error {
	target := cl.baseURL + apiPrefix + c.path
	if len(c.query) > 0 {
		target += "?" + c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		payload, err := json.Marshal(c.body)
		if err != nil {
			return apperror.NewRemoteError(c.op, 0, "", fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, body)
	if err != nil {
		return apperror.NewRemoteError(c.op, 0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return apperror.NewRemoteError(c.op, 0, "", err)
	}
	defer resp.Body.Close()

	cl.logger.DebugContext(ctx, "api call",
		slog.String("op", c.op),
		slog.String("method", c.method),
		slog.String("path", c.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return apperror.NewRemoteError(c.op, resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return remoteError(c.op, resp.StatusCode, env.Error)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperror.NewRemoteError(c.op, resp.StatusCode, "", fmt.Errorf("decode %s data: %w", c.op, err))
	}
	return nil
}

func remoteError(op string, status int, detail *response.ErrorDetail) error {
	if detail == nil {
		detail = &response.ErrorDetail{}
	}

	var cause error
	switch {
	case detail.Code == "VALIDATION_ERROR":
		cause = detailsToValidation(detail.Details)
	case codeErrors[detail.Code] != nil:
		cause = codeErrors[detail.Code]
	case status == http.StatusUnauthorized:
		cause = identity.ErrSessionExpired
	}
	return apperror.NewRemoteError(op, status, detail.Message, cause)
}

func detailsToValidation(details map[string]string) validator.ValidationErrors {
	fields := make([]string, 0, len(details))
	for field := range details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := make(validator.ValidationErrors, 0, len(fields))
	for _, field := range fields {
		errs = append(errs, validator.ValidationError{Field: field, Message: details[field]})
	}
	return errs
}

// bearer returns the stored access token for authenticated calls.
func (cl *Client) bearer(op string) (string, error) {
	cred, err := cl.tokens.Load()
	if err != nil {
		return "", apperror.NewRemoteError(op, 0, "", err)
	}
	if cred == nil {
		return "", apperror.NewRemoteError(op, http.StatusUnauthorized, "", identity.ErrSessionExpired)
	}
	return cred.Token, nil
}

// authed runs c with the stored token attached.
func (cl *Client) authed(ctx context.Context, c call, out interface{}) error {
	token, err := cl.bearer(c.op)
	if err != nil {
		return err
	}
	c.token = token
	return cl.do(ctx, c, out)
}

// malformed reports a row that failed boundary validation.
func malformed(op string, err error) error {
	return apperror.NewRemoteError(op, 0, fmt.Sprintf("%s returned a malformed row: %v", op, err), nil)
}

func (cl *Client) Provider() *Provider {
	return &Provider{client: cl}
}

func (cl *Client) Profiles() *ProfileRepository {
	return &ProfileRepository{client: cl}
}

func (cl *Client) Attendance() *AttendanceRepository {
	return &AttendanceRepository{client: cl}
}

func (cl *Client) LeaveRequests() *LeaveRequestRepository {
	return &LeaveRequestRepository{client: cl}
}

func (cl *Client) Reports() *ReportRepository {
	return &ReportRepository{client: cl}
}
