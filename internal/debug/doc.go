// Package debug provides debug logging functionality for rotabar.
//
// When enabled via the --debug flag, it logs selection changes, config
// warnings and timing of startup to a file, since the terminal itself is
// taken over by the UI.
package debug
