// Package app adapts the toggle state machine to a Bubble Tea program.
//
// The core in package toggle never sees terminal events. This package decodes
// them and forwards the ones the core cares about:
//
//   - Model: owns the *toggle.State, the key map and the layout size
//   - Update: turns space presses and left clicks into Activate calls, and
//     tickMsg into Tick calls
//   - View: renders the current text of the state, centered, with a status
//     line and a short help
//
// # Message Flow
//
//  1. Init arms a tick at the configured interval (default 50ms)
//  2. tickMsg advances the cooldown and re-arms the tick
//  3. tea.KeyMsg (space) and tea.MouseMsg (left press) activate the bit
//  4. View() reads State.Text() every frame
//
// # Quitting
//
// QuitFilter is installed with tea.WithFilter and turns q and Ctrl+C into a
// tea.QuitMsg before the model sees them, whatever state the bit is in. The
// model handles the same keys itself so it also quits when run without the
// filter.
//
// A mutator error during an activation is fatal: the model records it, quits,
// and Err() hands it back to the caller once the terminal is restored.
//
// # Keyboard Shortcuts
//
//	space       - Toggle the bit
//	left click  - Toggle the bit
//	q, Ctrl+C   - Quit
//	?           - Toggle full help
package app
