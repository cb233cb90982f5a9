package core

// Color is an ANSI 256-color code for a screen cell.
// ColorDefault leaves the terminal's own foreground untouched.
type Color uint8

const ColorDefault Color = 0

// Named colors used by the board chrome.
const (
	ColorRed    Color = 1
	ColorGreen  Color = 2
	ColorYellow Color = 3
	ColorGray   Color = 245
	ColorFrame  Color = 137 // Warm brown, close to the classic board background
)
