// Package storage is a minimal client for the Supabase Storage API:
// upload an object, resolve its public URL, and best-effort removal.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client uploads image blobs to a single storage bucket.
type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

// NewClient creates a storage client for the given Supabase project and bucket.
func NewClient(u, key, bucket string) *Client {
	if !strings.HasPrefix(u, "http") {
		u = "https://" + u
	}
	return &Client{
		baseURL: strings.TrimSuffix(u, "/"),
		apiKey:  key,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ObjectPath builds a collision-resistant object path for an uploaded
// file: "{entityType}/{random}.{ext}". The original extension is kept
// (lowercased) so the public URL stays recognizable to browsers.
func ObjectPath(entityType, originalFilename string) string {
	ext := strings.ToLower(path.Ext(originalFilename)) // includes the dot, may be empty
	return entityType + "/" + uuid.New().String() + ext
}

// Upload writes the object bytes under objectPath. It does not persist
// anything else; callers run their database write after a successful
// upload and may call Remove to compensate when that write fails.
func (c *Client) Upload(objectPath string, data []byte, contentType string) error {
	url := c.baseURL + "/storage/v1/object/" + c.bucket + "/" + objectPath
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// PublicURL resolves the public URL for an uploaded object. No network
// call: public bucket URLs are deterministic.
func (c *Client) PublicURL(objectPath string) string {
	return c.baseURL + "/storage/v1/object/public/" + c.bucket + "/" + objectPath
}

// Remove deletes an object. Used only as compensation after a failed
// database write, so failures are reported but rarely actionable.
func (c *Client) Remove(objectPath string) error {
	url := c.baseURL + "/storage/v1/object/" + c.bucket + "/" + objectPath
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
