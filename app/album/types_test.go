package album

import (
	"testing"
)

func TestAlbumIDURLs(t *testing.T) {
	id := AlbumID("B0zAxqIORGhwx3u")

	if got := id.URL(); got != "https://www.icloud.com/sharedalbum/#B0zAxqIORGhwx3u" {
		t.Errorf("Unexpected album URL: %s", got)
	}
	if got := id.AssetURL(GUID("ABC123")); got != "https://www.icloud.com/sharedalbum/#B0zAxqIORGhwx3u;ABC123" {
		t.Errorf("Unexpected asset URL: %s", got)
	}
	if got := id.AssetsEndpoint(); got != "https://p37-sharedstreams.icloud.com/B0zAxqIORGhwx3u/sharedstreams/webstream" {
		t.Errorf("Unexpected assets endpoint: %s", got)
	}
	if got := id.AssetURLsEndpoint(); got != "https://p37-sharedstreams.icloud.com/B0zAxqIORGhwx3u/sharedstreams/webasseturls" {
		t.Errorf("Unexpected asset URLs endpoint: %s", got)
	}
}

func TestKindFromWire(t *testing.T) {
	tests := []struct {
		wire     string
		expected Kind
	}{
		{"", KindPhoto},
		{"video", KindVideo},
		{"Video", KindVideo},
		{"photo", KindPhoto},
	}

	for _, tt := range tests {
		if got := KindFromWire(tt.wire); got != tt.expected {
			t.Errorf("KindFromWire(%q) = %v, expected %v", tt.wire, got, tt.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPhoto.String() != "photo" {
		t.Errorf("Expected 'photo', got '%s'", KindPhoto.String())
	}
	if KindVideo.String() != "video" {
		t.Errorf("Expected 'video', got '%s'", KindVideo.String())
	}
}
