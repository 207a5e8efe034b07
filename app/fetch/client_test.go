package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lysyi3m/album-biff/app/album"
)

// roundTripFunc lets tests serve canned responses without a network.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testClient(t *testing.T, handler roundTripFunc) *Client {
	t.Helper()
	client := NewClient("album-biff/test", 5*time.Second)
	client.httpClient.Transport = handler
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestAssetsFetchesAndNormalizes(t *testing.T) {
	var gotURL, gotBody, gotUserAgent string

	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		gotUserAgent = req.Header.Get("User-Agent")
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)

		return jsonResponse(http.StatusOK, `{
			"photos": [
				{
					"photoGuid": "A",
					"derivatives": {
						"342": {"width": "342", "height": "228", "checksum": "a-small"},
						"1024": {"width": "1024", "height": "683", "checksum": "a-big"}
					}
				},
				{
					"photoGuid": "B",
					"mediaAssetType": "video",
					"derivatives": {
						"PosterFrame": {"width": "1920", "height": "1080", "checksum": "b-poster"}
					}
				}
			]
		}`), nil
	})

	assets, err := client.Assets(context.Background(), album.AlbumID("testalbum"))
	if err != nil {
		t.Fatal(err)
	}

	if gotURL != "https://p37-sharedstreams.icloud.com/testalbum/sharedstreams/webstream" {
		t.Errorf("Unexpected URL: %s", gotURL)
	}
	if gotBody != `{"streamCtag":null}` {
		t.Errorf("Unexpected request body: %s", gotBody)
	}
	if gotUserAgent != "album-biff/test" {
		t.Errorf("Unexpected user agent: %s", gotUserAgent)
	}

	if len(assets) != 2 {
		t.Fatalf("Expected 2 assets, got %d", len(assets))
	}
	if assets[0].GUID != "A" || assets[0].Checksum != "a-small" {
		t.Errorf("Unexpected first asset: %+v", assets[0])
	}
	if assets[1].GUID != "B" || assets[1].Kind != album.KindVideo || assets[1].Checksum != "b-poster" {
		t.Errorf("Unexpected second asset: %+v", assets[1])
	}
}

func TestAssetsPropagatesNormalizationError(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"photos": [
				{"photoGuid": "V", "mediaAssetType": "video", "derivatives": {"342": {"width": "1", "height": "1", "checksum": "c"}}}
			]
		}`), nil
	})

	_, err := client.Assets(context.Background(), album.AlbumID("testalbum"))
	if err == nil {
		t.Fatal("Expected error for video without PosterFrame")
	}
	if !strings.Contains(err.Error(), "V") {
		t.Errorf("Expected error to name the asset, got: %v", err)
	}
}

func TestAssetsFailsOnHTTPError(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusServiceUnavailable, `{}`), nil
	})

	_, err := client.Assets(context.Background(), album.AlbumID("testalbum"))
	if err == nil {
		t.Fatal("Expected error for HTTP 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Expected status code in error, got: %v", err)
	}
}

func TestThumbnailURLsResolvesLocations(t *testing.T) {
	var gotURL string
	var gotRequest struct {
		PhotoGUIDs []string `json:"photoGuids"`
	}

	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		if err := json.NewDecoder(req.Body).Decode(&gotRequest); err != nil {
			t.Fatal(err)
		}

		return jsonResponse(http.StatusOK, `{
			"items": {
				"b-thumb": {"url_location": "cvws.icloud-content.com", "url_path": "/B/thumb.jpg"},
				"c-thumb": {"url_location": "cvws.icloud-content.com", "url_path": "/C/thumb.jpg"}
			}
		}`), nil
	})

	urls, err := client.ThumbnailURLs(context.Background(), album.AlbumID("testalbum"), []album.GUID{"B", "C"})
	if err != nil {
		t.Fatal(err)
	}

	if gotURL != "https://p37-sharedstreams.icloud.com/testalbum/sharedstreams/webasseturls" {
		t.Errorf("Unexpected URL: %s", gotURL)
	}
	if len(gotRequest.PhotoGUIDs) != 2 || gotRequest.PhotoGUIDs[0] != "B" || gotRequest.PhotoGUIDs[1] != "C" {
		t.Errorf("Expected request for [B, C], got %v", gotRequest.PhotoGUIDs)
	}

	if urls["b-thumb"] != "https://cvws.icloud-content.com/B/thumb.jpg" {
		t.Errorf("Unexpected resolved URL: %s", urls["b-thumb"])
	}
	if len(urls) != 2 {
		t.Errorf("Expected 2 resolved URLs, got %d", len(urls))
	}
}
