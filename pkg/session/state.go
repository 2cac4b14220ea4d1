package session

import (
	"github.com/dixieflatline76/Splitter/config"
	"github.com/dixieflatline76/Splitter/pkg/split"
)

// State is everything the user has chosen so far. It is a plain value: copying it is safe.
type State struct {
	Bitmap       *split.Bitmap         `json:"-"`
	Selection    split.Selection       `json:"selection"`     // live, follows the drag
	Committed    split.Selection       `json:"committed"`     // last finished gesture
	HasCommitted bool                  `json:"has_committed"` // false until the first gesture ends
	DisplayW     int                   `json:"display_w"`
	DisplayH     int                   `json:"display_h"`
	Mode         config.ResolutionMode `json:"mode"`
}

// Snapshot is the dependency set a recompute is made from.
type Snapshot struct {
	Bitmap    *split.Bitmap
	Selection split.Selection
	DisplayW  int
	DisplayH  int
	Mode      config.ResolutionMode
	// Seq orders snapshots; a render is kept only if no newer snapshot was taken meanwhile.
	Seq uint64
}

// snapshot returns the committed dependencies of s.
func (s State) snapshot() Snapshot {
	return Snapshot{
		Bitmap:    s.Bitmap,
		Selection: s.Committed,
		DisplayW:  s.DisplayW,
		DisplayH:  s.DisplayH,
		Mode:      s.Mode,
	}
}

// Result describes a finished recompute.
type Result struct {
	Top        split.PixelRegion
	Bottom     split.PixelRegion
	Generation int64
}
