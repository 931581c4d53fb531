package components

// Animation is a frame cursor over a set of named clips.
type Animation struct {
	// Frame is the fractional frame index into the current clip.
	Frame float64
	// FPS is how many frames the cursor advances per second.
	FPS float64
	// Lengths maps clip names to their frame count.
	Lengths map[string]int
}

// Advance moves the cursor and reports whether clip wrapped back to 0.
func (a *Animation) Advance(clip string, dt float64) bool {
	if a == nil {
		return false
	}
	n := a.Lengths[clip]
	if n <= 0 {
		n = 1
	}
	a.Frame += a.FPS * dt
	if a.Frame >= float64(n) {
		a.Frame = 0
		return true
	}
	return false
}

// Reset rewinds the cursor.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.Frame = 0
}

// Index is the integer frame to draw.
func (a *Animation) Index() int {
	if a == nil {
		return 0
	}
	return int(a.Frame)
}
