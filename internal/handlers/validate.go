// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// maxUploadSize caps article thumbnails at 5 MiB.
const maxUploadSize = 5 << 20

// allowedImageTypes lists the thumbnail MIME types the backend accepts.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// credsInput is the login/register form payload.
type credsInput struct {
	Username string
	Password string
}

func (in credsInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username,
			validation.Required.Error("Username field cannot be empty"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("Password must be at least 8 characters long"),
			validation.Length(8, 0).Error("Password must be at least 8 characters long"),
		),
	)
}

// articleInput is the article form payload before it becomes an API call.
type articleInput struct {
	Title      string
	Content    string
	CategoryID string
}

func (in articleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("Please enter title")),
		validation.Field(&in.Content, validation.Required.Error("Content field cannot be empty")),
		validation.Field(&in.CategoryID, validation.Required.Error("Please select category")),
	)
}

// categoryNameError validates a category name, returning a user-facing
// message or "" when valid. An invalid name must never reach the network.
func categoryNameError(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Category field cannot be empty"
	}
	return ""
}

// uploadError validates a thumbnail before its bytes hit the network.
func uploadError(contentType string, size int64) string {
	if !allowedImageTypes[contentType] {
		return "Support file type : jpg, png, gif, or webp only"
	}
	if size > maxUploadSize {
		return "Image must be smaller than 5 MB"
	}
	return ""
}

// fieldErrors flattens an ozzo validation result into a field → message
// map for template rendering. Struct fields are keyed by their Go name.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return out
	}
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}
