// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sdk provides a Go client for the launchpad HTTP API.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/luxfi/launchpad/pkg/launchpad"
)

// Client talks to a launchpad daemon.
type Client struct {
	baseURL    string
	httpClient *http.Client
	wsConn     *websocket.Conn
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateProjectRequest mirrors the daemon's project-creation payload.
type CreateProjectRequest struct {
	Caller       string `json:"caller"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Token        string `json:"token"`
	Distribution string `json:"distribution"`
	Duration     uint64 `json:"duration"`
	TotalTokens  uint64 `json:"total_tokens"`

	PricePerToken uint64 `json:"price_per_token,omitempty"`
	MinPrice      uint64 `json:"min_price,omitempty"`
	MaxPrice      uint64 `json:"max_price,omitempty"`

	MinRaise uint64 `json:"min_raise,omitempty"`
	MaxRaise uint64 `json:"max_raise,omitempty"`

	IndividualMin uint64 `json:"individual_min,omitempty"`
	IndividualMax uint64 `json:"individual_max,omitempty"`

	UseWhitelist bool `json:"use_whitelist,omitempty"`
}

// ProjectView is the daemon's project detail response.
type ProjectView struct {
	Project     *launchpad.Project `json:"project"`
	TotalRaised uint64             `json:"total_raised"`
}

// PriceView is the daemon's auction price response.
type PriceView struct {
	ProjectID   uint64 `json:"project_id"`
	PriceScaled uint64 `json:"price_scaled"`
	Price       string `json:"price"`
}

// CreateProject registers a new sale and returns its project id.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (uint64, error) {
	var out struct {
		ProjectID uint64 `json:"project_id"`
	}
	err := c.post(ctx, "/v1/projects", req, &out)
	return out.ProjectID, err
}

// ActivateProject opens the contribution window.
func (c *Client) ActivateProject(ctx context.Context, caller string, id uint64) error {
	return c.post(ctx, fmt.Sprintf("/v1/projects/%d/activate", id),
		map[string]string{"caller": caller}, nil)
}

// CancelProject aborts a pending or active sale.
func (c *Client) CancelProject(ctx context.Context, caller string, id uint64) error {
	return c.post(ctx, fmt.Sprintf("/v1/projects/%d/cancel", id),
		map[string]string{"caller": caller}, nil)
}

// AddParticipants adds users to a pending project's whitelist.
func (c *Client) AddParticipants(ctx context.Context, caller string, id uint64, users []string) error {
	return c.post(ctx, fmt.Sprintf("/v1/projects/%d/whitelist", id),
		map[string]any{"caller": caller, "users": users}, nil)
}

// Contribute sends a contribution and returns the caller's cumulative
// position.
func (c *Client) Contribute(ctx context.Context, caller string, id, amount uint64) (uint64, error) {
	var out struct {
		Total uint64 `json:"total_contribution"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/projects/%d/contributions", id),
		map[string]any{"caller": caller, "amount": amount}, &out)
	return out.Total, err
}

// Finalize settles a sale whose window has closed and returns the
// resulting status.
func (c *Client) Finalize(ctx context.Context, id uint64) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/projects/%d/finalize", id), nil, &out)
	return out.Status, err
}

// Claim collects the caller's token allocation from an ended sale.
func (c *Client) Claim(ctx context.Context, caller string, id uint64) (uint64, error) {
	var out struct {
		Tokens uint64 `json:"tokens"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/projects/%d/claims", id),
		map[string]string{"caller": caller}, &out)
	return out.Tokens, err
}

// Refund recovers the caller's contribution from a canceled sale.
func (c *Client) Refund(ctx context.Context, caller string, id uint64) (uint64, error) {
	var out struct {
		Amount uint64 `json:"amount"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/projects/%d/refunds", id),
		map[string]string{"caller": caller}, &out)
	return out.Amount, err
}

// GetProject fetches a project and its raise total.
func (c *Client) GetProject(ctx context.Context, id uint64) (*ProjectView, error) {
	var out ProjectView
	if err := c.get(ctx, fmt.Sprintf("/v1/projects/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveProjects lists all sales currently accepting contributions.
func (c *Client) ActiveProjects(ctx context.Context) ([]*launchpad.Project, error) {
	var out struct {
		Projects []*launchpad.Project `json:"projects"`
	}
	err := c.get(ctx, "/v1/projects", &out)
	return out.Projects, err
}

// CurrentPrice returns the live clearing price of a Dutch auction.
func (c *Client) CurrentPrice(ctx context.Context, id uint64) (*PriceView, error) {
	var out PriceView
	if err := c.get(ctx, fmt.Sprintf("/v1/projects/%d/price", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Allocation previews a user's token allocation at the current raise.
func (c *Client) Allocation(ctx context.Context, id uint64, user string) (uint64, error) {
	var out struct {
		Tokens uint64 `json:"tokens"`
	}
	err := c.get(ctx, fmt.Sprintf("/v1/projects/%d/allocations/%s", id, user), &out)
	return out.Tokens, err
}

// ConnectEvents opens the live event stream.
func (c *Client) ConnectEvents(ctx context.Context) error {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http") + "/v1/events"
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	if resp != nil {
		resp.Body.Close()
	}
	c.wsConn = conn
	return nil
}

// NextEvent blocks until the next event arrives on the stream.
func (c *Client) NextEvent() (*launchpad.Event, error) {
	if c.wsConn == nil {
		return nil, fmt.Errorf("event stream not connected")
	}
	var ev launchpad.Event
	if err := c.wsConn.ReadJSON(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Close shuts down the event stream if connected.
func (c *Client) Close() error {
	if c.wsConn == nil {
		return nil
	}
	err := c.wsConn.Close()
	c.wsConn = nil
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
