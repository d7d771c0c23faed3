package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/repository"
	"github.com/dom/rift-companion/internal/service"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RecommendBuild asks for ranked items for a game context
func (c *APIClient) RecommendBuild(req service.BuildRequest) (*service.BuildResult, error) {
	var result service.BuildResult
	if err := c.do(http.MethodPost, "/builds/recommend", req, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzeThreats returns the threat profile of an opposing roster
func (c *APIClient) AnalyzeThreats(opponentIDs []string) (*domain.ThreatProfile, error) {
	body := map[string][]string{"opponentIds": opponentIDs}

	var profile domain.ThreatProfile
	if err := c.do(http.MethodPost, "/threats", body, "", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SimulateComposition compares two rosters
func (c *APIClient) SimulateComposition(req service.CompositionRequest) (*domain.SimulationResult, error) {
	var result domain.SimulationResult
	if err := c.do(http.MethodPost, "/compositions/simulate", req, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SyncCatalog re-seeds the server's catalog storage. Requires an admin token.
func (c *APIClient) SyncCatalog(token string) (*repository.SeedResult, error) {
	var result repository.SeedResult
	if err := c.do(http.MethodPost, "/catalog/sync", nil, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *APIClient) do(method, path string, body interface{}, token string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s failed (status %d): %s", method, path, resp.StatusCode, bytes.TrimSpace(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
