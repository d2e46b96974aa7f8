package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"docadmin/internal/model"
	"docadmin/pkg/logger"
	"docadmin/pkg/pagination"
)

const (
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 8 << 20
)

type Config struct {
	BaseURL string
	// Timeout bounds a whole request. Ignored when HTTPClient is set.
	Timeout time.Duration
	// PageSize is sent with list requests when positive; otherwise the server default applies.
	PageSize   int
	HTTPClient *http.Client
}

// Client talks to the document admin HTTP API. It never retries and never caches.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		pageSize:   cfg.PageSize,
		httpClient: httpClient,
	}, nil
}

// FetchPage requests one page of a project's documents. A nil cursor asks for the first page.
func (c *Client) FetchPage(ctx context.Context, projectName string, cursor *pagination.Cursor) (pagination.Page[model.DocumentSummary], error) {
	if cursor != nil {
		if err := cursor.Validate(); err != nil {
			return pagination.Page[model.DocumentSummary]{}, err
		}
	}

	q := url.Values{}
	pagination.Encode(cursor, q)
	if c.pageSize > 0 {
		q.Set(pagination.PageSizeParam, strconv.Itoa(c.pageSize))
	}

	var out documentPageJSON
	if err := c.do(ctx, http.MethodGet, projectPath(projectName, "documents"), q, nil, &out); err != nil {
		return pagination.Page[model.DocumentSummary]{}, err
	}
	return out.toModel(), nil
}

func (c *Client) GetDocument(ctx context.Context, projectName, key string) (model.DocumentSummary, error) {
	var out documentSummaryJSON
	if err := c.do(ctx, http.MethodGet, projectPath(projectName, "documents", key), nil, nil, &out); err != nil {
		return model.DocumentSummary{}, err
	}
	return out.toModel(), nil
}

func (c *Client) CreateDocument(ctx context.Context, projectName, key, snapshot string) (model.DocumentSummary, error) {
	var out documentSummaryJSON
	body := createDocumentJSON{Key: key, Snapshot: snapshot}
	if err := c.do(ctx, http.MethodPost, projectPath(projectName, "documents"), nil, body, &out); err != nil {
		return model.DocumentSummary{}, err
	}
	return out.toModel(), nil
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out projectListJSON
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &out); err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(out.Projects))
	for _, p := range out.Projects {
		projects = append(projects, p.toModel())
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, name string) (model.Project, error) {
	var out projectJSON
	if err := c.do(ctx, http.MethodGet, projectPath(name), nil, nil, &out); err != nil {
		return model.Project{}, err
	}
	return out.toModel(), nil
}

func (c *Client) CreateProject(ctx context.Context, name string) (model.Project, error) {
	var out projectJSON
	if err := c.do(ctx, http.MethodPost, "/projects", nil, createProjectJSON{Name: name}, &out); err != nil {
		return model.Project{}, err
	}
	return out.toModel(), nil
}

func (c *Client) UpdateProject(ctx context.Context, name string, fields model.UpdatableProjectFields) (model.Project, error) {
	var out projectJSON
	body := updateProjectJSON{
		Name:               fields.Name,
		AuthWebhookURL:     fields.AuthWebhookURL,
		AuthWebhookMethods: fields.AuthWebhookMethods,
	}
	if err := c.do(ctx, http.MethodPatch, projectPath(name), nil, body, &out); err != nil {
		return model.Project{}, err
	}
	return out.toModel(), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.FromContext(ctx).Debug("admin api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func statusError(code int, raw []byte) error {
	var e errorJSON
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &e); err == nil && e.Error != "" {
		msg = e.Error
	}

	if code == http.StatusNotFound {
		if msg == "" {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}
	return &APIError{StatusCode: code, Message: msg}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func projectPath(name string, rest ...string) string {
	var b strings.Builder
	b.WriteString("/projects/")
	b.WriteString(url.PathEscape(name))
	for _, seg := range rest {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}
