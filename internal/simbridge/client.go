// Package simbridge talks to the process-simulation bridge service that
// mirrors readiness numbers into the OLP environment. The dashboard works
// without it; pushes are best effort.
package simbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GeorgeMcIntyre-Web/SimPilot-sub011/internal/service/readiness"
)

// Client is an HTTP client for the bridge. Zero value is not usable; use
// NewClient.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a bridge client. httpClient nil gets a 10s-timeout
// default; log nil is silenced.
func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log}
}

// Enabled reports whether a bridge endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Ping checks bridge availability.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bridge unreachable: %w", err)
	}
	defer drain(resp)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge health returned %d", resp.StatusCode)
	}
	return nil
}

// PushReadiness sends one project summary to the bridge.
func (c *Client) PushReadiness(ctx context.Context, projectCode string, summary readiness.ProjectSummary) error {
	payload := struct {
		ProjectCode string                   `json:"projectCode"`
		Summary     readiness.ProjectSummary `json:"summary"`
		PushedAt    time.Time                `json:"pushedAt"`
	}{ProjectCode: projectCode, Summary: summary, PushedAt: time.Now().UTC()}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/readiness", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("push readiness: %w", err)
	}
	defer drain(resp)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("bridge rejected readiness push: %d", resp.StatusCode)
	}

	c.log.Info("readiness pushed to bridge",
		zap.String("project", projectCode),
		zap.Int("stations", summary.StationCount),
	)
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
