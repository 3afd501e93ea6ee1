package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette for the setup and color screens, picked to sit next to
// the green board.
var MenuColors = struct {
	Border     tcell.Color
	Hint       tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(65),  // grayish green
	Hint:       tcell.PaletteColor(245), // dim gray
	ButtonBG:   tcell.PaletteColor(28),  // board green
	ButtonText: tcell.PaletteColor(255), // white
}
