// Package fetch talks to the shared-album API: one call listing every asset
// in the album, and one call resolving thumbnail URLs for a set of assets.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/album-biff/app/album"
)

type Client struct {
	httpClient *http.Client
	normalizer *album.Normalizer
	userAgent  string
	timeout    time.Duration
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  false,
				DisableKeepAlives:   false,
				MaxIdleConnsPerHost: 5,
			},
		},
		normalizer: album.NewNormalizer(),
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

type assetsRequest struct {
	StreamCtag *string `json:"streamCtag"`
}

type assetsResponse struct {
	Photos []album.RawAsset `json:"photos"`
}

// Assets fetches every asset in the album and normalizes the records,
// preserving the remote ordering.
func (c *Client) Assets(ctx context.Context, albumID album.AlbumID) ([]album.Asset, error) {
	var response assetsResponse
	if err := c.post(ctx, albumID.AssetsEndpoint(), assetsRequest{}, &response); err != nil {
		return nil, err
	}

	assets, err := c.normalizer.Run(response.Photos)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize assets: %w", err)
	}

	slog.Debug("Fetched album contents", "album", albumID, "assets", len(assets))
	return assets, nil
}

type thumbnailsRequest struct {
	PhotoGUIDs []album.GUID `json:"photoGuids"`
}

type thumbnailsResponse struct {
	Items map[album.Checksum]location `json:"items"`
}

// location is one resolved thumbnail host/path pair. The displayable URL is
// plain concatenation under a fixed https scheme.
type location struct {
	URLLocation string `json:"url_location"`
	URLPath     string `json:"url_path"`
}

func (l location) url() string {
	return fmt.Sprintf("https://%s%s", l.URLLocation, l.URLPath)
}

// ThumbnailURLs resolves displayable thumbnail URLs for the given assets
// only, keyed by derivative checksum.
func (c *Client) ThumbnailURLs(ctx context.Context, albumID album.AlbumID, guids []album.GUID) (map[album.Checksum]string, error) {
	var response thumbnailsResponse
	if err := c.post(ctx, albumID.AssetURLsEndpoint(), thumbnailsRequest{PhotoGUIDs: guids}, &response); err != nil {
		return nil, err
	}

	urls := make(map[album.Checksum]string, len(response.Items))
	for checksum, loc := range response.Items {
		urls[checksum] = loc.url()
	}

	slog.Debug("Resolved thumbnail URLs", "album", albumID, "requested", len(guids), "resolved", len(urls))
	return urls, nil
}

func (c *Client) post(ctx context.Context, url string, body any, out any) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(timeoutCtx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
