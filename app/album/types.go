package album

import (
	"fmt"
	"strings"
)

// GUID identifies a single asset. Assets keep the same GUID across polls,
// so GUIDs are what the seen-state is keyed on.
type GUID string

// Checksum identifies one asset at one particular resolution. It is the join
// key between a normalized asset and its resolved thumbnail URL.
type Checksum string

// AlbumID is the opaque identifier of a public shared album,
// e.g. "B0zAxqIORGhwx3u".
type AlbumID string

// URL is the user-facing page showing the whole album.
func (a AlbumID) URL() string {
	return fmt.Sprintf("https://www.icloud.com/sharedalbum/#%s", string(a))
}

// AssetURL is the user-facing page showing a single asset in the album.
func (a AlbumID) AssetURL(guid GUID) string {
	return fmt.Sprintf("https://www.icloud.com/sharedalbum/#%s;%s", string(a), string(guid))
}

// AssetsEndpoint is the API endpoint listing all assets in the album.
func (a AlbumID) AssetsEndpoint() string {
	return fmt.Sprintf("https://p37-sharedstreams.icloud.com/%s/sharedstreams/webstream", string(a))
}

// AssetURLsEndpoint is the API endpoint resolving thumbnail URLs for a set of
// assets.
func (a AlbumID) AssetURLsEndpoint() string {
	return fmt.Sprintf("https://p37-sharedstreams.icloud.com/%s/sharedstreams/webasseturls", string(a))
}

// Kind distinguishes photo assets from video assets.
type Kind int

const (
	KindPhoto Kind = iota
	KindVideo
)

func (k Kind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "photo"
}

// KindFromWire maps the remote mediaAssetType discriminator to a Kind. An
// absent or empty discriminator means photo.
func KindFromWire(mediaAssetType string) Kind {
	if strings.EqualFold(mediaAssetType, "video") {
		return KindVideo
	}
	return KindPhoto
}

// Asset is the canonical internal representation of one photo or video.
// Width and Height are display hints for the chosen thumbnail, already scaled
// down; they are not the true asset resolution.
type Asset struct {
	GUID     GUID
	Kind     Kind
	Checksum Checksum
	Width    int
	Height   int
}

// Wire types, discarded after normalization.

// RawAsset is one asset record as returned by the list-assets endpoint. The
// derivatives map is keyed by the pixel count of the longest side, as a
// stringified integer, with "PosterFrame" as a special key for video stills.
type RawAsset struct {
	PhotoGUID      GUID                     `json:"photoGuid"`
	MediaAssetType string                   `json:"mediaAssetType"`
	Derivatives    map[string]RawDerivative `json:"derivatives"`
}

// RawDerivative is one resolution variant of an asset. Width and height come
// over the wire as decimal strings.
type RawDerivative struct {
	Width    string   `json:"width"`
	Height   string   `json:"height"`
	Checksum Checksum `json:"checksum"`
}
