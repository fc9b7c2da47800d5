// Package ui holds the palette and status symbols shared by togglebit's
// full-screen widget and its plain command output.
//
// Colors are 24-bit hex values; lipgloss degrades them to whatever the
// terminal supports. DisableColors switches to monochrome output for the
// --no-color flag.
package ui
