package toggl

import (
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

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports"
)

const (
	maxResponseBytes = 4 << 20
	apiTokenPassword = "api_token"
)

type Client struct {
	BaseURL    string
	APIToken   string
	UserAgent  string
	HTTPClient *http.Client
}

var _ ports.EntrySource = (*Client)(nil)

type projectPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ClientID int64  `json:"cid"`
}

type timeEntryPayload struct {
	ID          int64   `json:"id"`
	ProjectID   *int64  `json:"pid"`
	Description string  `json:"description"`
	Start       string  `json:"start"`
	Stop        *string `json:"stop"`
	Duration    int64   `json:"duration"`
}

func (c *Client) ListClientProjects(ctx context.Context, clientID domain.ClientID) ([]domain.Project, error) {
	var payload []projectPayload
	path := "clients/" + strconv.FormatInt(int64(clientID), 10) + "/projects"
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("list projects of client %d: %w", clientID, err)
	}

	projects := make([]domain.Project, 0, len(payload))
	for _, p := range payload {
		projects = append(projects, domain.Project{
			ID:       domain.ProjectID(p.ID),
			Name:     p.Name,
			ClientID: domain.ClientID(p.ClientID),
		})
	}

	return projects, nil
}

func (c *Client) ListTimeEntries(ctx context.Context, window domain.Window) ([]domain.TimeEntry, error) {
	query := url.Values{}
	query.Set("start_date", window.Start.Format(time.RFC3339))
	query.Set("end_date", window.End.Format(time.RFC3339))

	var payload []timeEntryPayload
	if err := c.getJSON(ctx, "time_entries", query, &payload); err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}

	entries := make([]domain.TimeEntry, 0, len(payload))
	for _, p := range payload {
		entry, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (p timeEntryPayload) toDomain() (domain.TimeEntry, error) {
	start, err := parseTimestamp(p.Start)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("time entry %d start: %w", p.ID, err)
	}

	entry := domain.TimeEntry{
		ID:          p.ID,
		Description: p.Description,
		Start:       start,
	}

	if p.ProjectID != nil {
		pid := domain.ProjectID(*p.ProjectID)
		entry.ProjectID = &pid
	}

	if p.Stop != nil && strings.TrimSpace(*p.Stop) != "" {
		stop, err := parseTimestamp(*p.Stop)
		if err != nil {
			return domain.TimeEntry{}, fmt.Errorf("time entry %d stop: %w", p.ID, err)
		}
		entry.Stop = &stop
	}

	if err := entry.Validate(); err != nil {
		return domain.TimeEntry{}, err
	}

	return entry, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", domain.ErrInvalidTimestamp, raw, err)
	}

	return parsed, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path, query)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.SetBasicAuth(c.APIToken, apiTokenPassword)
	request.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}

	response, err := c.httpClient().Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: status %d", domain.ErrUnauthorized, response.StatusCode)
		}
		return fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func buildAPIURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	// Resolve relative to the base path, so /api/v8 is kept.
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	endpoint, err := parsed.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}
