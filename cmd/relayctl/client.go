package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"realtime-relay/domain"
	"realtime-relay/infrastructure/httpapi"
	"realtime-relay/services"
	"strconv"
	"strings"
	"time"
)

// apiClient reads the operator endpoints of a running relay.
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string, timeout time.Duration) *apiClient {
	return &apiClient{base: strings.TrimRight(base, "/") + httpapi.Prefix, http: &http.Client{Timeout: timeout}}
}

func (c *apiClient) Stats(ctx context.Context) (services.Stats, error) {
	var stats services.Stats
	return stats, c.get(ctx, "/stats", nil, &stats)
}

func (c *apiClient) Connections(ctx context.Context, filter domain.ActorType) (services.ConnectionList, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("type", string(filter))
	}
	var list services.ConnectionList
	return list, c.get(ctx, "/connections", query, &list)
}

func (c *apiClient) Sessions(ctx context.Context, limit int) (httpapi.SessionList, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var list httpapi.SessionList
	return list, c.get(ctx, "/sessions", query, &list)
}

func (c *apiClient) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, apiErr.Message)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
