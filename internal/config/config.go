package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${PROPGRID_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet  `yaml:"stylesheet"`
	Keys       KeyBindings `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal      Styling `yaml:"normal"`
	RowLabel    Styling `yaml:"row-label"`
	RowValue    Styling `yaml:"row-value"`
	RowSelected Styling `yaml:"row-selected"`
	Unspecified Styling `yaml:"unspecified"`
	Editor      Styling `yaml:"editor"`
	Button      Styling `yaml:"button"`
	Status      Styling `yaml:"status"`
	Help        Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// KeyBindings maps key sequence specification strings to named actions, per
// input context.
//
// The grid context applies while no row is being edited, the session context
// while an edit session is live.
type KeyBindings struct {
	Grid    map[string]string `yaml:"grid"`
	Session map[string]string `yaml:"session"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Keys.Grid) > 0 {
		result.Keys.Grid = augment.Keys.Grid
	}
	if len(augment.Keys.Session) > 0 {
		result.Keys.Session = augment.Keys.Session
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	override := func(target *Styling, value Styling) {
		if value.Fg != "" || value.Bg != "" {
			*target = value
		}
	}

	override(&result.Normal, augment.Normal)
	override(&result.RowLabel, augment.RowLabel)
	override(&result.RowValue, augment.RowValue)
	override(&result.RowSelected, augment.RowSelected)
	override(&result.Unspecified, augment.Unspecified)
	override(&result.Editor, augment.Editor)
	override(&result.Button, augment.Button)
	override(&result.Status, augment.Status)
	override(&result.Help, augment.Help)

	return result
}
