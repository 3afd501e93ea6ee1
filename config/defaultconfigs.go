package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Colors: ConfigColors{
			BoardColor:        22,
			BoardColorAlt:     28,
			BlackColor:        232,
			WhiteColor:        255,
			MarkerColor:       214,
			LabelColor:        250,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 94,
		},
		Symbols: ConfigSymbols{
			BlackDisc: '●',
			WhiteDisc: '●',
			EmptyCell: ' ',
			Marker:    '·',
		},
	}

	DefaultConfig = Config{
		Theme:     DefaultTheme,
		ShowMoves: false,
		LogLevel:  "info",
	}
}
