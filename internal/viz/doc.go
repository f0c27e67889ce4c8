// Package viz hosts the ball field in a terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: the field, its canvas and the status bar
//   - [Canvas]: Braille-based pixel canvas with a colour per cell
//   - Theme selection with 5 built-in colour schemes, each with a ball palette
//
// Mouse input drives the field directly: moving the pointer repels nearby
// balls, pressing on a ball grabs it, releasing throws it.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	T     - Cycle colour themes
//	G     - Toggle kinetic energy graph
//	?     - Show help overlay
//	Q     - Quit
package viz
