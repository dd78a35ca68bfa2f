// Package viz provides the interactive terminal front-end for the samplers.
//
// The screen is split into a top bar with the mini-app selector, a settings
// panel on the left, the model panel on the right and the plot in between.
// The settings panel slides open and closed on a spring.
//
// # Key Bindings
//
//	Tab     - Next mini-app
//	S       - Toggle settings panel
//	+/-     - Zoom factor
//	F       - Toggle force repaint
//	↑/↓     - Harmonic count (adjustable apps)
//	Enter   - Draw
//	?       - Full help
//	Q       - Quit
package viz
