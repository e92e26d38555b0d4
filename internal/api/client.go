// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the typed client for the remote CMS backend. All portal
// data flows through it: articles, categories, authentication, profile, and
// image uploads. Authenticated calls attach "Authorization: Bearer <token>";
// every request carries a deadline that doubles as its cancellation signal.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the fixed external backend the portal fronts.
	DefaultBaseURL = "https://test-fe.mysellerpintar.com/api"

	// defaultTimeout is the per-request budget for regular API calls.
	defaultTimeout = 10 * time.Second

	// uploadTimeout is the larger budget for multipart image uploads.
	uploadTimeout = 30 * time.Second
)

// Client talks to the remote CMS API.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration

	// retryUnit scales the profile-fetch backoff (2s, 4s in production).
	// Tests shorten it.
	retryUnit time.Duration
}

// New creates a client for the given base URL. A zero timeout selects the
// default request budget.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base:      strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		timeout:   timeout,
		retryUnit: 2 * time.Second,
	}
}

// do performs one JSON round-trip. A non-empty token is attached as a
// bearer credential. The response body is decoded into out when out is
// non-nil and the call succeeded.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	return c.send(ctx, c.timeout, method, path, token, in, out)
}

func (c *Client) send(ctx context.Context, budget time.Duration, method, path, token string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindFault, Err: fmt.Errorf("marshal: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return &Error{Kind: KindFault, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindFault, Err: fmt.Errorf("decode: %w", err)}
		}
	}
	return nil
}

// transportError classifies a failure that produced no HTTP response.
func transportError(ctx context.Context, err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Err: err}
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return &Error{Kind: KindCanceled, Err: err}
	default:
		return &Error{Kind: KindNetwork, Err: err}
	}
}

// statusError classifies an HTTP error status and extracts the server's
// message from the body when one is present.
func statusError(status int, body []byte) *Error {
	e := &Error{Status: status, Message: serverMessage(body)}

	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case status == http.StatusForbidden:
		e.Kind = KindForbidden
	case status == http.StatusGatewayTimeout:
		e.Kind = KindTimeout
	case status >= 500:
		e.Kind = KindFault
	default:
		e.Kind = KindRejected
	}
	return e
}

// serverMessage pulls a human-readable message out of an error response
// body. The backend uses both {"message": ...} and {"error": ...}.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// decodeCollection tolerates the backend's two list shapes: an enveloped
// {"data": [...]} object and a bare JSON array.
func decodeCollection[T any](raw json.RawMessage) ([]T, error) {
	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var bare []T
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}
