// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// uploadResponse is the upload endpoint's reply: the public URL of the
// stored file, ready to splice into markdown as an image source.
type uploadResponse struct {
	URL string `json:"url"`
}

// Upload streams a file to the remote upload endpoint under the given
// folder and returns the URL the API stored it at. Storage, resizing and
// size limits all live on the server side.
func (c *Client) Upload(ctx context.Context, token, folder, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("folder", folder); err != nil {
		return "", fmt.Errorf("upload folder field: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("upload copy: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("upload finalize: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("upload read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload: status %d: %s", resp.StatusCode, string(respBody))
	}

	var out uploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("upload unmarshal: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload: empty url in response")
	}
	return out.URL, nil
}
