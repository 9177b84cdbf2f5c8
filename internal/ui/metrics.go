package ui

// Layout constants in logical units, as the bar was designed.
const (
	IconSize         = 20
	BarHeight        = 50
	CornerRadius     = 25
	ShadowRadius     = 10
	ActiveRotation   = -90
	InactiveRotation = 90
)

// unitsPerRow is how many logical units one terminal row stands for.
const unitsPerRow = 12.5

// unitsPerColumn is how many logical units one terminal column stands for.
// Cells are roughly twice as tall as they are wide.
const unitsPerColumn = unitsPerRow / 2

// Derived terminal sizes.
var (
	// BarRows is the bar's height in rows, borders included.
	BarRows = Rows(BarHeight)

	// ShadowRows is the height of the shadow drawn above the bar.
	ShadowRows = max(1, Rows(ShadowRadius))

	// IconColumns is the width of the icon frame.
	IconColumns = Columns(IconSize)
)

// DefaultMarginX is the horizontal inset between the bar and the screen edges.
const DefaultMarginX = 2

// Rows converts logical units to terminal rows, rounding to nearest.
func Rows(units int) int {
	return int(float64(units)/unitsPerRow + 0.5)
}

// Columns converts logical units to terminal columns, rounding to nearest.
func Columns(units int) int {
	return int(float64(units)/unitsPerColumn + 0.5)
}
