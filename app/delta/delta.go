// Package delta compares a freshly fetched asset list against the persisted
// seen-set from the previous run.
package delta

import (
	"slices"

	"github.com/lysyi3m/album-biff/app/album"
)

// Result is the outcome of one comparison.
type Result struct {
	// New holds the assets not present in the seen-set, in the exact order
	// the remote album returned them. The album's own display order is
	// meaningful and survives into the notification.
	New []album.Asset
	// Vanished holds identifiers that were seen before but are absent from
	// the current fetch, sorted for stable logging. A shrinking album is an
	// anomaly worth a warning, not a failure.
	Vanished []album.GUID
}

// Compute returns the delta between the fetched assets and the seen-set.
// The input slice is never mutated.
func Compute(assets []album.Asset, seen map[album.GUID]struct{}) Result {
	current := make(map[album.GUID]struct{}, len(assets))
	for _, asset := range assets {
		current[asset.GUID] = struct{}{}
	}

	var vanished []album.GUID
	for guid := range seen {
		if _, ok := current[guid]; !ok {
			vanished = append(vanished, guid)
		}
	}
	slices.Sort(vanished)

	var added []album.Asset
	for _, asset := range assets {
		if _, ok := seen[asset.GUID]; !ok {
			added = append(added, asset)
		}
	}

	return Result{New: added, Vanished: vanished}
}
