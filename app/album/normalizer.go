package album

import (
	"errors"
	"fmt"
	"strconv"
)

const posterFrameKey = "PosterFrame"

var (
	// ErrMissingVariant is returned when an asset has no usable thumbnail
	// derivative, in particular a video without a PosterFrame still.
	ErrMissingVariant = errors.New("missing thumbnail derivative")
	// ErrMalformedSize is returned when a photo derivative key is not a
	// stringified integer pixel size.
	ErrMalformedSize = errors.New("malformed derivative size key")
	// ErrMalformedDimension is returned when a derivative width or height is
	// not a decimal integer.
	ErrMalformedDimension = errors.New("malformed derivative dimension")
)

// Normalizer converts raw asset records into canonical Assets, choosing
// exactly one thumbnail derivative per asset.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run normalizes all raw records, preserving their order. Any malformed
// record fails the whole batch: a payload we cannot fully understand is not
// worth notifying about.
func (n *Normalizer) Run(raws []RawAsset) ([]Asset, error) {
	assets := make([]Asset, 0, len(raws))
	for _, raw := range raws {
		asset, err := n.normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", raw.PhotoGUID, err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (n *Normalizer) normalize(raw RawAsset) (Asset, error) {
	kind := KindFromWire(raw.MediaAssetType)

	thumbnail, err := chooseThumbnail(kind, raw.Derivatives)
	if err != nil {
		return Asset{}, err
	}

	width, err := parseDimension("width", thumbnail.Width)
	if err != nil {
		return Asset{}, err
	}
	height, err := parseDimension("height", thumbnail.Height)
	if err != nil {
		return Asset{}, err
	}

	// Video poster frames arrive oversized relative to photo thumbnails, so
	// they get a larger shrink factor.
	shrink := 2
	if kind == KindVideo {
		shrink = 6
	}

	return Asset{
		GUID:     raw.PhotoGUID,
		Kind:     kind,
		Checksum: thumbnail.Checksum,
		Width:    width / shrink,
		Height:   height / shrink,
	}, nil
}

// chooseThumbnail picks the one derivative used as the asset's thumbnail.
// Videos use the PosterFrame still. Photos use the smallest available size;
// equal sizes are broken by the lexicographically smaller key so the choice
// is deterministic.
func chooseThumbnail(kind Kind, derivatives map[string]RawDerivative) (RawDerivative, error) {
	if kind == KindVideo {
		thumbnail, ok := derivatives[posterFrameKey]
		if !ok {
			return RawDerivative{}, ErrMissingVariant
		}
		return thumbnail, nil
	}

	var (
		bestKey  string
		bestSize int
		found    bool
	)
	for key := range derivatives {
		size, err := strconv.Atoi(key)
		if err != nil {
			return RawDerivative{}, fmt.Errorf("%w: %q", ErrMalformedSize, key)
		}
		if !found || size < bestSize || (size == bestSize && key < bestKey) {
			bestKey = key
			bestSize = size
			found = true
		}
	}
	if !found {
		return RawDerivative{}, fmt.Errorf("%w: no derivatives present", ErrMissingVariant)
	}
	return derivatives[bestKey], nil
}

func parseDimension(name, value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedDimension, name, value)
	}
	return parsed, nil
}
