// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"genzet/internal/models"
)

// Credentials is the login/register payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // registration only
}

// AuthResult is what a successful login returns: the bearer token plus the
// account identity the portal caches alongside it.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (AuthResult, error) {
	var res AuthResult
	in := Credentials{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &res); err != nil {
		return AuthResult{}, err
	}
	return res, nil
}

// Register creates a new account. New accounts get the reader role; admin
// accounts are provisioned on the backend.
func (c *Client) Register(ctx context.Context, username, password string) error {
	in := Credentials{Username: username, Password: password, Role: "User"}
	return c.do(ctx, http.MethodPost, "/auth/register", "", in, nil)
}

// profileAttempts is the total attempt budget for Profile: one initial call
// plus two retries.
const profileAttempts = 3

// Profile fetches the authenticated user's account. It is the one call with
// a bounded retry loop: timeouts and gateway timeouts are retried up to two
// more times with a linearly increasing delay (2s, then 4s); every other
// failure surfaces immediately. The loop always terminates within the
// attempt budget.
func (c *Client) Profile(ctx context.Context, token string) (models.Profile, error) {
	waits := 0
	backoff := retry.WithMaxRetries(profileAttempts-1, retry.BackoffFunc(func() (time.Duration, bool) {
		waits++
		return time.Duration(waits) * c.retryUnit, false
	}))

	var profile models.Profile
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var payload struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		}
		err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &payload)
		if err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		profile = models.Profile{ID: payload.ID, Username: payload.Username, Role: payload.Role}
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
