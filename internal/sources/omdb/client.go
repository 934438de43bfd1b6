// Package omdb provides the client for the OMDb film-metadata web
// service. Any field of a returned record may carry the "N/A" marker
// instead of real data; normalization of those markers belongs to the
// catalog's import adapter, not this package.
package omdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
)

const serviceName = "omdb"

// Searcher defines the OMDb lookups used by the import flow.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Detail(ctx context.Context, imdbID string) (*Record, error)
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchResult represents a single OMDb search match.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// searchResponse models the OMDb search payload.
type searchResponse struct {
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

// Record is a full OMDb record as returned by the detail lookup.
type Record struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	IMDBID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Search performs a free-text title search. A "not found" answer from the
// service is an empty result list, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("s", query)

	var payload searchResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, err
	}
	if payload.Response != "True" {
		if strings.Contains(strings.ToLower(payload.Error), "not found") {
			return nil, nil
		}
		return nil, &errors.ExternalServiceError{Service: serviceName, Message: payload.Error}
	}
	return payload.Search, nil
}

// Detail fetches the full record for an external identifier.
func (c *Client) Detail(ctx context.Context, imdbID string) (*Record, error) {
	params := url.Values{}
	params.Set("i", imdbID)

	var record Record
	if err := c.get(ctx, params, &record); err != nil {
		return nil, err
	}
	if record.Response != "True" {
		return nil, &errors.ExternalServiceError{Service: serviceName, Message: record.Error}
	}
	return &record, nil
}

// get performs a GET request against the API and decodes the JSON
// response into target.
func (c *Client) get(ctx context.Context, params url.Values, target any) error {
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &errors.ExternalServiceError{Service: serviceName, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &errors.ExternalServiceError{Service: serviceName, Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.ExternalServiceError{Service: serviceName, Message: "read response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return &errors.ExternalServiceError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "omdb response", err)
	}
	return nil
}
