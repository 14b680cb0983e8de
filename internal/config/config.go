// Package config provides YAML-based configuration loading for the game
// and its terminal front end.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the complete front-end configuration.
// Game rules are not configurable; only how the game is driven and drawn.
type Config struct {
	Display Display `yaml:"display"`
	Theme   Theme   `yaml:"theme"`
	Keys    Keys    `yaml:"keys"`
}

// Display controls the tick loop and screen furniture.
type Display struct {
	TickRate int  `yaml:"tick_rate"` // Ticks per second
	ShowHelp bool `yaml:"show_help"` // Show the key help footer
}

// Theme holds lipgloss color strings (ANSI index or #rrggbb) per palette role.
type Theme struct {
	Text     string `yaml:"text"`
	Panel    string `yaml:"panel"`     // Panels while nothing is highlighted
	PanelLit string `yaml:"panel_lit"` // The highlighted panel
	PanelDim string `yaml:"panel_dim"` // The other panel
	Hint     string `yaml:"hint"`
}

// Keys lists Bubble Tea key strings per action.
type Keys struct {
	Start      []string `yaml:"start"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
}

// Bindings returns the key lists by action name, in a stable order.
func (k Keys) Bindings() []Binding {
	return []Binding{
		{Action: "start", Keys: k.Start},
		{Action: "left", Keys: k.Left},
		{Action: "right", Keys: k.Right},
		{Action: "quit", Keys: k.Quit},
		{Action: "screenshot", Keys: k.Screenshot},
	}
}

// Binding pairs an action name with its keys.
type Binding struct {
	Action string
	Keys   []string
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if c.Display.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be at most 1000, got %d", c.Display.TickRate))
	}

	owner := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		// Screenshots are optional
		if len(b.Keys) == 0 && b.Action != "screenshot" {
			errs = append(errs, fmt.Errorf("keys.%s: no keys bound", b.Action))
		}
		for _, k := range b.Keys {
			if strings.TrimSpace(k) == "" && k != " " {
				errs = append(errs, fmt.Errorf("keys.%s: empty key", b.Action))
				continue
			}
			if prev, ok := owner[k]; ok && prev != b.Action {
				errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", b.Action, k, prev))
				continue
			}
			owner[k] = b.Action
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}

// KeyLabel renders a key string for humans ("space" for " ").
func KeyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyLabels renders a list of keys joined with "/".
func KeyLabels(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = KeyLabel(k)
	}
	return strings.Join(labels, "/")
}
