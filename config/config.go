package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "termothello/config.json"
)

var validate = validator.New()

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are 256-color palette indexes.
type ConfigColors struct {
	BoardColor        int `json:"board" validate:"min=0,max=255"`
	BoardColorAlt     int `json:"board_alt" validate:"min=0,max=255"`
	BlackColor        int `json:"black" validate:"min=0,max=255"`
	WhiteColor        int `json:"white" validate:"min=0,max=255"`
	MarkerColor       int `json:"marker" validate:"min=0,max=255"`
	LabelColor        int `json:"label" validate:"min=0,max=255"`
	CursorColorFG     int `json:"cursor_fg" validate:"min=0,max=255"`
	CursorColorBG     int `json:"cursor_bg" validate:"min=0,max=255"`
	LastPlayedColorBG int `json:"last_played_bg" validate:"min=0,max=255"`
}

type ConfigSymbols struct {
	BlackDisc rune `json:"black"`
	WhiteDisc rune `json:"white"`
	EmptyCell rune `json:"empty"`
	Marker    rune `json:"marker"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

type Config struct {
	Theme     Theme  `json:"theme"`
	ShowMoves bool   `json:"show_moves" env:"TERMOTHELLO_SHOW_MOVES"`
	LogLevel  string `json:"log_level" env:"TERMOTHELLO_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile   string `json:"log_file" env:"TERMOTHELLO_LOG_FILE"`
}

// InitConfig loads the user's config file if there is one, then applies
// environment overrides on top of the defaults.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at path. An empty path means defaults plus environment.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &config)
	} else {
		err = cleanenv.ReadEnv(&config)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &InvalidConfig{fmt.Sprintf("%s fails %q", verrs[0].Namespace(), verrs[0].Tag())}
		}
		return &InvalidConfig{err.Error()}
	}
	s := c.Theme.Symbols
	for _, r := range []rune{s.BlackDisc, s.WhiteDisc, s.EmptyCell, s.Marker} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// Save writes the theme to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return c.SaveTo(absPath)
}

// SaveTo stores c's theme in the config at path. Every other field is kept as the
// file has it, so environment and flag overrides of this run never reach disk.
func (c *Config) SaveTo(path string) error {
	stored, err := readCfgFile(path)
	if err != nil {
		return err
	}
	stored.Theme = c.Theme
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return saveCfgFile(path, &stored, 0664)
}

// readCfgFile returns the defaults overlaid with the file at path, without
// environment overrides. A missing file yields the defaults.
func readCfgFile(path string) (Config, error) {
	stored := DefaultConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return stored, nil
	}
	if err != nil {
		return stored, err
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return stored, fmt.Errorf("read config: %w", err)
	}
	return stored, nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
