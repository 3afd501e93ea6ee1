package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termothello/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	status    *tview.TextView
	cfg       *config.Config
	log       *slog.Logger
	onDone    func()

	// Current selection
	selectedBoardColor  int
	selectedMarkerColor int
	editingMarker       bool // true = editing marker color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Felt tones for the board
var boardColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{58, "Olive"},
	{64, "Moss"},
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{236, "Dark Gray"},
	{240, "Gray"},
}

// Marker colors that stand out against the felt
var markerColors = []paletteEntry{
	{214, "Orange Gold"},
	{220, "Bright Yellow"},
	{226, "Yellow"},
	{208, "Dark Orange"},
	{196, "Red"},
	{201, "Magenta"},
	{51, "Cyan"},
	{87, "Light Cyan"},
	{250, "Gray"},
	{255, "White"},
}

// alternateShade returns the checkerboard partner for a board color.
func alternateShade(code int) int {
	switch code {
	case 22:
		return 28
	case 28:
		return 34
	case 23:
		return 29
	case 24:
		return 30
	case 58:
		return 64
	case 64:
		return 70
	case 236, 240:
		return code + 2
	}
	return code
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, logger *slog.Logger, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                 cfg,
		log:                 logger,
		onDone:              onDone,
		selectedBoardColor:  cfg.Theme.Colors.BoardColor,
		selectedMarkerColor: cfg.Theme.Colors.MarkerColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Preview follows the highlighted entry
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.highlight(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.status = tview.NewTextView()
	cc.status.SetTextColor(MenuColors.Hint)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cc.preview, 0, 1, false).
		AddItem(cc.status, 1, 0, false)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(right, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingMarker {
		return markerColors
	}
	return boardColors
}

func (cc *ColorConfigUI) highlight(index int) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	if cc.editingMarker {
		cc.selectedMarkerColor = entries[index].code
	} else {
		cc.selectedBoardColor = entries[index].code
	}
}

// apply stores the highlighted color and writes the config to disk.
func (cc *ColorConfigUI) apply(index int) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	cc.highlight(index)

	if cc.editingMarker {
		cc.cfg.Theme.Colors.MarkerColor = cc.selectedMarkerColor
	} else {
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = alternateShade(cc.selectedBoardColor)
	}

	if err := cc.cfg.Save(); err != nil {
		cc.log.Warn("save config", "error", err)
		cc.status.SetText(fmt.Sprintf("Could not save colors: %s", err))
		return
	}
	cc.status.SetText("Saved.")

	if cc.editingMarker {
		// Back to board colors after picking a marker
		cc.editingMarker = false
		cc.populateColorList()
		return
	}
	if cc.onDone != nil {
		cc.onDone()
	}
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	if cc.editingMarker {
		cc.colorList.SetTitle(" Select Marker Color (Tab: switch to board) ")
		current = cc.selectedMarkerColor
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: switch to marker) ")
	}

	entries := cc.entries()
	for i, c := range entries {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range entries {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	if width < size*2+4 || height < size+4 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	altColor := tcell.PaletteColor(alternateShade(cc.selectedBoardColor))
	blackColor := tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)
	whiteColor := tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)
	markerColor := tcell.PaletteColor(cc.selectedMarkerColor)
	symbols := cc.cfg.Theme.Symbols

	// Opening position on a 6x6 corner, with Black's replies marked
	discs := map[[2]int]rune{
		{2, 2}: 'W', {2, 3}: 'B',
		{3, 2}: 'B', {3, 3}: 'W',
	}
	markers := map[[2]int]bool{
		{1, 2}: true, {2, 1}: true, {3, 4}: true, {4, 3}: true,
	}

	startX := x + 2
	startY := y + 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := boardColor
			if (row+col)%2 == 1 {
				bg = altColor
			}
			style := tcell.StyleDefault.Background(bg)
			ch := symbols.EmptyCell
			switch discs[[2]int{row, col}] {
			case 'B':
				ch, style = symbols.BlackDisc, style.Foreground(blackColor)
			case 'W':
				ch, style = symbols.WhiteDisc, style.Foreground(whiteColor)
			default:
				if markers[[2]int{row, col}] {
					ch, style = symbols.Marker, style.Foreground(markerColor)
				}
			}
			screen.SetContent(startX+col*2, startY+row, ch, nil, style)
			screen.SetContent(startX+col*2+1, startY+row, ' ', nil, style)
		}
	}

	info := fmt.Sprintf("Board: %d  Marker: %d", cc.selectedBoardColor, cc.selectedMarkerColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and marker color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingMarker = !cc.editingMarker
	cc.populateColorList()
}
