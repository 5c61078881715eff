package service

const (
	// CompactViewportWidth is the viewport width, in CSS pixels, below which
	// the compact threshold applies.
	CompactViewportWidth = 768

	CompactThreshold = 4
	WideThreshold    = 6
)

// IsCompact reports whether a viewport width counts as narrow. Unknown
// widths (zero or negative) are treated as wide.
func IsCompact(viewportWidth int) bool {
	return viewportWidth > 0 && viewportWidth < CompactViewportWidth
}

// Threshold returns how many items are visible before the list is expanded.
func Threshold(compact bool) int {
	if compact {
		return CompactThreshold
	}
	return WideThreshold
}

// Window returns the visible prefix of items. The result shares the
// backing array but has its capacity clipped, so appending to it never
// writes into items.
func Window[T any](items []T, compact, expanded bool) []T {
	n := len(items)
	if !expanded {
		n = min(n, Threshold(compact))
	}
	return items[:n:n]
}

// ShowToggle reports whether the "show more" control should be offered.
func ShowToggle(length int, compact bool) bool {
	return length > Threshold(compact)
}
