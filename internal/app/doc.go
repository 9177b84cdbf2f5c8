// Package app provides the main Bubble Tea application model for rotabar.
//
// It hosts the rotated tab bar built from configuration, listens for its
// selection-changed notifications, and adds the application-level states:
// browsing, the help overlay and fuzzy jump-to-tab.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
