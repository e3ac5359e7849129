// Package client is the typed Go consumer of the gallery API. It mirrors
// what the admin dashboard does: it keeps the last-fetched collections in
// memory and patches them from the server's response after every successful
// mutation. Nothing is patched before the server confirms.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client carries the base URL and the admin token. The token lives on the
// client instance, not in any process-wide place.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

// APIError is returned for any non-2xx response, carrying the status code
// and the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// SetToken installs a previously issued admin token.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges the admin password for a bearer token and keeps it on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	out := struct {
		Token string `json:"token"`
	}{}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"password": password}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

// Verify reports whether the current token is still accepted by the server.
func (c *Client) Verify(ctx context.Context) bool {
	out := struct {
		Valid bool `json:"valid"`
	}{}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &out); err != nil {
		return false
	}
	return out.Valid
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		errBody := struct {
			Error string `json:"error"`
		}{}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
