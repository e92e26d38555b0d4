// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed API call. Every call site converts the kind to a
// user-visible message through Message; nothing here is fatal to the process.
type Kind int

const (
	// KindCanceled: the request's context was cancelled by the caller.
	KindCanceled Kind = iota
	// KindTimeout: no response within the request budget (client deadline
	// or an upstream 504).
	KindTimeout
	// KindNetwork: no response at all — DNS failure, refused connection,
	// dropped link.
	KindNetwork
	// KindUnauthorized: 401. The stored session is discarded and the user
	// is sent back to the login screen, regardless of originating page.
	KindUnauthorized
	// KindForbidden: 403. Permission message, no redirect.
	KindForbidden
	// KindRejected: any other 4xx. The server's own message is surfaced
	// when the body carries one.
	KindRejected
	// KindFault: 5xx other than 504.
	KindFault
	// KindValidation: local pre-submit check failed; the request never
	// reached the network.
	KindValidation
)

// Error is the tagged failure returned by every client method.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 when no response was received
	Message string // server-provided or locally produced detail, may be empty
	Err     error  // underlying transport error, may be nil
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s", e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %v", e.Err)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError creates a local validation failure that shares the error
// taxonomy without involving the network layer.
func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf extracts the failure kind from an error chain. Unrecognized errors
// report KindFault so callers still get a generic message.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindFault
}

// IsUnauthorized reports whether the error is a 401, which always forces a
// logout and a redirect to the login screen.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// retryable reports whether the profile fetch may retry this failure:
// client-side timeouts and gateway timeouts only.
func retryable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == KindTimeout || apiErr.Status == http.StatusGatewayTimeout
}

// Message maps any error from this package to the string shown to the user.
// The mapping is the single shared place where HTTP results become prose.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch apiErr.Kind {
	case KindCanceled:
		return "The request was cancelled. Please try again."
	case KindTimeout:
		return "Request timeout. Please check your connection and try again."
	case KindNetwork:
		return "Network error. Please check your connection."
	case KindUnauthorized:
		return "Your session has expired. Please log in again."
	case KindForbidden:
		return "You don't have permission to perform this action."
	case KindRejected:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "The server rejected the request. Please review your input."
	case KindValidation:
		return apiErr.Message
	default:
		return "The server encountered an error. Please try again later."
	}
}
