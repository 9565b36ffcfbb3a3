// Package remote fetches test definitions from another service over HTTP.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"quizmaker/internal/models"
)

const (
	requestTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Client reads tests from {baseURL}/tests and {baseURL}/tests/{id}
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Credentials configures the OAuth2 client-credentials grant. A zero
// value means the remote service needs no authentication.
type Credentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// NewClient creates a client for baseURL. Tokens, when configured, are
// fetched and refreshed transparently.
func NewClient(baseURL string, creds Credentials) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	if creds.TokenURL != "" {
		cfg := &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     creds.TokenURL,
		}
		httpClient = cfg.Client(context.Background())
		httpClient.Timeout = requestTimeout
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// GetTest fetches one test. A 404 maps to models.ErrTestNotFound.
func (c *Client) GetTest(ctx context.Context, id string) (*models.TestDefinition, error) {
	if id == "" {
		return nil, models.ErrTestNotFound
	}

	var test models.TestDefinition
	if err := c.getJSON(ctx, "/tests/"+url.PathEscape(id), &test); err != nil {
		return nil, err
	}
	if test.ID == "" {
		test.ID = id
	}
	return &test, nil
}

// ListTests fetches every test the remote service offers
func (c *Client) ListTests(ctx context.Context) ([]models.TestDefinition, error) {
	var tests []models.TestDefinition
	if err := c.getJSON(ctx, "/tests", &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrTestNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
