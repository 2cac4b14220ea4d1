package split

// Selection is the split line as a percentage rectangle of the displayed image.
// Only Height is free; X and Y are always 0 and Width is always 100.
type Selection struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSelection returns a full-width selection of the given height percentage.
func NewSelection(heightPercent float64) Selection {
	return Selection{X: 0, Y: 0, Width: 100, Height: heightPercent}
}

// Pinned returns s with the horizontal extent forced back to full width at offset zero.
// Drag handles may report a shifted or narrowed rectangle; only the height survives.
func (s Selection) Pinned() Selection {
	return NewSelection(s.Height)
}

// Clamped returns a pinned selection whose height lies within [minPercent, 100].
func (s Selection) Clamped(minPercent float64) Selection {
	h := s.Height
	if h < minPercent {
		h = minPercent
	}
	if h > 100 {
		h = 100
	}
	return NewSelection(h)
}
