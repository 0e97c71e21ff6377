package storage

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultImageAPIBase = "https://api.imgbb.com/1"

// ImageHostClient talks to the hosted image API. Uploads are sent as a
// base64-encoded form payload; the host transcodes quality/format
// automatically and returns a permanent CDN URL.
type ImageHostClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type imageHostResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		ID        string `json:"id"`
		URL       string `json:"url"`
		Display   string `json:"display_url"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewImageHostClient(apiKey, baseURL string) *ImageHostClient {
	if baseURL == "" {
		baseURL = defaultImageAPIBase
	}
	client := &http.Client{
		Timeout: 2 * time.Minute,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &ImageHostClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

// Upload forwards the raw bytes as a base64 payload and returns the hosted
// image handle. No retry: a failed call surfaces as a single upload failure.
func (c *ImageHostClient) Upload(data []byte, filename string) (*HostedImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file, size is 0 bytes")
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("name", filename)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	endpoint := fmt.Sprintf("%s/upload", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var decoded imageHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !decoded.Success {
		if decoded.Error.Message != "" {
			return nil, fmt.Errorf("image host returned error: %s", decoded.Error.Message)
		}
		return nil, fmt.Errorf("image host returned non-OK status: %d", resp.StatusCode)
	}

	hostedURL := decoded.Data.Display
	if hostedURL == "" {
		hostedURL = decoded.Data.URL
	}

	return &HostedImage{
		ID:        decoded.Data.ID,
		URL:       hostedURL,
		DeleteURL: decoded.Data.DeleteURL,
	}, nil
}

// Delete fires the host's delete handle. Best-effort only.
func (c *ImageHostClient) Delete(deleteURL string) error {
	if deleteURL == "" {
		return nil
	}

	req, err := http.NewRequest(http.MethodGet, deleteURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("failed to delete image: %d", resp.StatusCode)
	}

	return nil
}
