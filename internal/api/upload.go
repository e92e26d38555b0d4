// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// UploadImage sends image bytes to the backend's upload endpoint as a
// multipart form and returns the hosted image URL. Uploads get a larger
// request budget than regular calls; callers validate size and MIME type
// before any bytes hit the network.
func (c *Client) UploadImage(ctx context.Context, token, filename, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", &Error{Kind: KindFault, Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", &Error{Kind: KindFault, Err: err}
	}
	if err := writer.Close(); err != nil {
		return "", &Error{Kind: KindFault, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload", &buf)
	if err != nil {
		return "", &Error{Kind: KindFault, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, raw)
	}

	var result struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &Error{Kind: KindFault, Err: fmt.Errorf("decode upload response: %w", err)}
	}
	return result.ImageURL, nil
}
