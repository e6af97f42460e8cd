// Package ctgov provides access to the ClinicalTrials.gov API v2 and the
// local field-projection engine that trims its study records.
package ctgov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	cterrors "github.com/olgasafonova/clinicaltrials-mcp-server/internal/errors"
	"github.com/olgasafonova/clinicaltrials-mcp-server/metrics"
)

const (
	// MaxPageSize is the registry's hard cap on page size.
	MaxPageSize = 1000

	// DefaultMaxStudies is used when a caller does not set max_studies.
	DefaultMaxStudies = 50

	// batchChunkSize bounds how many NCT IDs go into a single
	// filter.ids request during batched detail retrieval.
	batchChunkSize = 50
)

// Client provides access to the ClinicalTrials.gov API v2.
//
// Field selection is never pushed to the server: every fetch returns the
// full study records and field trimming happens locally via Project.
// Client-side control over the output shape is more reliable than the
// upstream fields parameter, whose behavior has shifted across API
// revisions.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new ClinicalTrials.gov client from config.
func NewClient(config *Config, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		userAgent:  config.UserAgent,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SearchQuery holds the search filters for SearchStudies. All list
// filters use OR semantics within the list; empty lists are omitted.
type SearchQuery struct {
	Conditions    []string
	Interventions []string
	Sponsors      []string
	Terms         []string
	Titles        []string // title and acronym tokens
	NCTIDs        []string
	MaxStudies    int
}

// SearchStudies queries GET /studies and returns full study records.
// The page size is clamped to the registry's maximum of 1000.
func (c *Client) SearchStudies(ctx context.Context, query SearchQuery) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("pageSize", strconv.Itoa(clampPageSize(query.MaxStudies)))

	if len(query.Conditions) > 0 {
		params.Set("query.cond", strings.Join(query.Conditions, " OR "))
	}
	if len(query.Interventions) > 0 {
		params.Set("query.intr", strings.Join(query.Interventions, " OR "))
	}
	if len(query.Sponsors) > 0 {
		params.Set("query.spons", strings.Join(query.Sponsors, " OR "))
	}
	if len(query.Terms) > 0 {
		params.Set("query.term", strings.Join(query.Terms, " OR "))
	}
	if len(query.Titles) > 0 {
		params.Set("query.titles", strings.Join(query.Titles, " OR "))
	}
	if len(query.NCTIDs) > 0 {
		params.Set("filter.ids", strings.Join(query.NCTIDs, ","))
	}

	var result SearchResponse
	if err := c.doRequest(ctx, "/studies", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStudy retrieves the full record for a single study.
func (c *Client) GetStudy(ctx context.Context, nctID string) (Study, error) {
	params := url.Values{}
	params.Set("format", "json")

	var study Study
	if err := c.doRequest(ctx, "/studies/"+url.PathEscape(nctID), params, &study); err != nil {
		var retrErr *cterrors.RetrievalError
		if errors.As(err, &retrErr) && retrErr.StatusCode == http.StatusNotFound {
			return nil, &cterrors.NotFoundError{NCTID: nctID}
		}
		return nil, err
	}
	return study, nil
}

// GetStudiesByIDs retrieves full records for a list of NCT IDs in
// sequential chunks, then reorders the results to match the caller's
// original sequence. IDs the registry does not know are dropped;
// duplicate input IDs are collapsed to their first occurrence.
func (c *Client) GetStudiesByIDs(ctx context.Context, nctIDs []string) ([]Study, error) {
	ordered := make([]string, 0, len(nctIDs))
	seen := make(map[string]bool, len(nctIDs))
	for _, id := range nctIDs {
		id = NormalizeNCTID(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, id)
	}

	byID := make(map[string]Study, len(ordered))
	for start := 0; start < len(ordered); start += batchChunkSize {
		end := min(start+batchChunkSize, len(ordered))
		chunk := ordered[start:end]

		resp, err := c.SearchStudies(ctx, SearchQuery{
			NCTIDs:     chunk,
			MaxStudies: len(chunk),
		})
		if err != nil {
			return nil, err
		}

		for _, study := range resp.Studies {
			if id := study.NCTID(); id != "" {
				byID[id] = study
			}
		}
	}

	// Order preservation is a correctness requirement here: callers rely
	// on results lining up with their input sequence.
	studies := make([]Study, 0, len(ordered))
	for _, id := range ordered {
		if study, ok := byID[id]; ok {
			studies = append(studies, study)
		}
	}
	return studies, nil
}

// FieldStats retrieves field value statistics from /stats/field/values.
func (c *Client) FieldStats(ctx context.Context, fieldNames, fieldTypes []string) (map[string]any, error) {
	params := url.Values{}
	for _, name := range fieldNames {
		params.Add("fields", name)
	}
	for _, typ := range fieldTypes {
		params.Add("types", typ)
	}

	var result map[string]any
	if err := c.doRequest(ctx, "/stats/field/values", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// doRequest performs a single GET against the registry. There are no
// retries: transport errors and non-2xx statuses surface immediately as
// a RetrievalError.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	action := apiAction(endpoint)
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("ctgov: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(action, time.Since(start).Seconds(), false, "transport")
		return &cterrors.RetrievalError{Endpoint: endpoint, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordAPICall(action, duration, false, "read")
		return &cterrors.RetrievalError{Endpoint: endpoint, Message: "reading response: " + err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordAPICall(action, duration, false, strconv.Itoa(resp.StatusCode))
		return &cterrors.RetrievalError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 200),
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		metrics.RecordAPICall(action, duration, false, "decode")
		return &cterrors.RetrievalError{Endpoint: endpoint, Message: "decoding response: " + err.Error(), Err: err}
	}

	metrics.RecordAPICall(action, duration, true, "")
	return nil
}

// apiAction maps an endpoint path onto a bounded metrics label.
func apiAction(endpoint string) string {
	switch {
	case endpoint == "/studies":
		return "search"
	case strings.HasPrefix(endpoint, "/studies/"):
		return "study_detail"
	case strings.HasPrefix(endpoint, "/stats/"):
		return "field_stats"
	default:
		return "other"
	}
}

// clampPageSize maps a requested study count onto a valid page size.
func clampPageSize(n int) int {
	if n <= 0 {
		return DefaultMaxStudies
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
