// Package viz renders an entropy profile in the terminal.
//
// The interactive chart is a Bubble Tea program ([Model], [Run]) that draws
// the visible part of a [entropy.Dataset] on a braille [Canvas] and feeds key
// presses to the [nav.Viewport] state machine.
//
// # Key Bindings
//
//	Left/Right     - Scroll by a tenth of the window
//	Up/+/=         - Zoom in
//	Down/-/_       - Zoom out
//	H              - Toggle hexadecimal offsets
//	R/Home         - Reset to the full file
//	T              - Cycle color themes
//	O              - Toggle the whole-file overview
//	?              - Show help
//	Q/Ctrl+C       - Quit
//
// Columns whose entropy reaches the high-entropy threshold are drawn in the
// theme's Hot color.
package viz
