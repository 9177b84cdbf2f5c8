// Package ui renders the rotated tab bar.
//
// RenderItem draws one tab (icon frame and label) and RenderBar lays the
// items out in the floating, rounded bar with its shadow row. Compose and
// OverlayAt place the bar and any popups over page content. Sizes are given
// in logical units and converted to terminal cells by Rows and Columns.
//
// Rendering is pure and separated from state management.
package ui
