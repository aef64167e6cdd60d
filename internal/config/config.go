package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Accent              string `toml:"accent"`
	AccentText          string `toml:"accent_text"`
	BorderColor         string `toml:"border_color"`
	SelectionBackground string `toml:"selection_background"`
	Label               string `toml:"label"`
	Value               string `toml:"value"`
	Error               string `toml:"error"`
	Success             string `toml:"success"`
	Disabled            string `toml:"disabled"`
	MatchBackground     string `toml:"match_background"`
}

type Defaults struct {
	PasswordLength int    `toml:"password_length"`
	UUIDCount      int    `toml:"uuid_count"`
	UUIDVersion    int    `toml:"uuid_version"`
	HashAlgorithm  string `toml:"hash_algorithm"`
	Base64URLSafe  bool   `toml:"base64_url_safe"`
	Timezone       string `toml:"timezone"`
	NotifySeconds  int    `toml:"notify_seconds"`
}

type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Config struct {
	Theme    Theme    `toml:"theme"`
	Defaults Defaults `toml:"defaults"`
	Log      Log      `toml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			Accent:              "#7D56F4",
			AccentText:          "#FAFAFA",
			BorderColor:         "#0000FF",
			SelectionBackground: "#FFAA00",
			Label:               "#888888",
			Value:               "#FFFFFF",
			Error:               "#FF6B6B",
			Success:             "#90EE90",
			Disabled:            "#666666",
			MatchBackground:     "#444400",
		},
		Defaults: Defaults{
			PasswordLength: 12,
			UUIDCount:      1,
			UUIDVersion:    4,
			HashAlgorithm:  "MD5",
			Timezone:       "Local",
			NotifySeconds:  2,
		},
		Log: Log{
			Level: "info",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "kit.toml"
	}
	return filepath.Join(home, ".config", "kit", "kit.toml")
}

// LoadFile reads path over the defaults. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), err
	}

	cfg.Defaults.normalize()
	return cfg, nil
}

func (d *Defaults) normalize() {
	d.PasswordLength = clamp(d.PasswordLength, 4, 64)
	d.UUIDCount = clamp(d.UUIDCount, 1, 100)
	if d.UUIDVersion != 7 {
		d.UUIDVersion = 4
	}
	if d.NotifySeconds <= 0 {
		d.NotifySeconds = 2
	}
	if d.Timezone == "" {
		d.Timezone = "Local"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Config) SaveFile(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Title      lipgloss.Style
	Legend     lipgloss.Style
	LegendKey  lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style
	Selected   lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Focused    lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Disabled   lipgloss.Style
	Enabled    lipgloss.Style
	Match      lipgloss.Style
	Border     lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.AccentText)).
			Background(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
		Legend: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)),
		LegendKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderColor)).
			Padding(0, 1),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Value)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectionBackground)).
			Foreground(lipgloss.Color("#000000")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Value)),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Disabled)),
		Enabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),
		Match: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.MatchBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderColor)).
			Padding(1, 2),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)),
	}
}
