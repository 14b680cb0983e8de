package config

import (
	_ "embed"
)

//go:embed defaults/leftright.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{
			TickRate: 60,
			ShowHelp: true,
		},
		Theme: Theme{
			Text:     "15",
			Panel:    "1",
			PanelLit: "9",
			PanelDim: "52",
			Hint:     "245",
		},
		Keys: Keys{
			Start:      []string{" "},
			Left:       []string{"left", "h"},
			Right:      []string{"right", "l"},
			Quit:       []string{"esc", "q", "ctrl+c"},
			Screenshot: []string{"ctrl+s"},
		},
	}
}
