package ui

// Card geometry for the grid view.
const (
	// CardWidth is the outer width of one grid card, borders included.
	CardWidth = 26

	// CardHeight is the outer height of one grid card, borders included.
	CardHeight = 5
)

// Chrome heights around the main content area.
const (
	headerHeight = 2 // title bar + search bar
	footerHeight = 1
)

// Overlay limits.
const (
	// LogOverlayLines is how many session log lines the overlay shows.
	LogOverlayLines = 200

	// MinStatBarWidth keeps stat bars readable on narrow terminals.
	MinStatBarWidth = 10
)
