package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutImageWidth is the minimum width to show the image column in the list.
	LayoutImageWidth = 120
)

// Column widths for the product list.
const (
	listIDWidth    = 5
	listPriceWidth = 10
)
