// Package mailcow implements a client for the alias endpoints of the
// mailcow admin API.
package mailcow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 30 * time.Second

// Config holds connection settings for a mailcow instance.
type Config struct {
	// Instance is the base URL, e.g. https://mail.example.com.
	Instance string
	APIKey   string
	// ForceIPv4 dials over tcp4 only. mailcow serves IPv6 through a
	// docker proxy that masks the client address, which defeats API key
	// IP whitelists.
	ForceIPv4 bool
}

// Client talks to the mailcow admin API.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
}

// NewClient creates a mailcow API client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.Instance, "/"),
		http:    newHTTPClient(cfg.ForceIPv4),
	}
}

func newHTTPClient(forceIPv4 bool) *http.Client {
	client := &http.Client{Timeout: requestTimeout}
	if !forceIPv4 {
		return client
	}

	dialer := &net.Dialer{Timeout: requestTimeout}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		if network == "tcp" {
			network = "tcp4"
		}
		return dialer.DialContext(ctx, network, addr)
	}
	client.Transport = transport
	return client
}

// ListAliases returns every alias on the instance.
func (c *Client) ListAliases(ctx context.Context) ([]Alias, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/get/alias/all", nil)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}

	var entries []aliasEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("list aliases: parse response: %w", err)
	}

	aliases := make([]Alias, len(entries))
	for i, e := range entries {
		aliases[i] = e.alias()
	}
	return aliases, nil
}

// GetAlias returns a single alias by ID.
func (c *Client) GetAlias(ctx context.Context, id int) (Alias, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/get/alias/%d", id), nil)
	if err != nil {
		return Alias{}, fmt.Errorf("get alias: %w", err)
	}

	// mailcow answers an unknown ID with an empty object.
	var entry aliasEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return Alias{}, fmt.Errorf("get alias: parse response: %w", err)
	}
	if entry.Address == "" {
		return Alias{}, fmt.Errorf("get alias: alias %d not found", id)
	}
	return entry.alias(), nil
}

// CreateAlias registers a new active alias.
func (c *Client) CreateAlias(ctx context.Context, req CreateRequest) (Result, error) {
	payload := map[string]any{
		"address":        req.Address,
		"goto":           req.Goto,
		"public_comment": req.PublicComment,
		"active":         1,
	}

	body, err := c.do(ctx, http.MethodPost, "/api/v1/add/alias", payload)
	if err != nil {
		return Result{}, fmt.Errorf("create alias: %w", err)
	}
	res, err := mutationResult(body)
	if err != nil {
		return Result{}, fmt.Errorf("create alias: %w", err)
	}
	return res, nil
}

// EditAlias applies attrs to the aliases named by ids.
func (c *Client) EditAlias(ctx context.Context, ids []int, attrs EditAttrs) (Result, error) {
	payload := map[string]any{
		"items": ids,
		"attr":  attrs.attr(),
	}

	body, err := c.do(ctx, http.MethodPost, "/api/v1/edit/alias", payload)
	if err != nil {
		return Result{}, fmt.Errorf("edit alias: %w", err)
	}
	res, err := mutationResult(body)
	if err != nil {
		return Result{}, fmt.Errorf("edit alias: %w", err)
	}
	return res, nil
}

// DeleteAliases removes the aliases named by ids.
func (c *Client) DeleteAliases(ctx context.Context, ids []int) (Result, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/delete/alias", ids)
	if err != nil {
		return Result{}, fmt.Errorf("delete alias: %w", err)
	}
	res, err := mutationResult(body)
	if err != nil {
		return Result{}, fmt.Errorf("delete alias: %w", err)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.cfg.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("mailcow request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}
