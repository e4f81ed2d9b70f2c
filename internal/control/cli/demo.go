package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/config"
	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/edit/editors"
	"github.com/ja-he/propgrid/internal/grid"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
)

// DemoCommand is the command `demo`, which runs an interactive property grid
// over a set of example properties.
type DemoCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the demo command.
// (This gets called by `go-flags` when `demo` is provided on the command
// line)
func (command *DemoCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// while the TUI runs, the terminal is not available for logging; write to
	// the requested file or drop logs
	var logWriter io.Writer = io.Discard
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file}
		} else {
			logWriter = file
		}
	}
	log.Logger = zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	// set up dir per option
	baseDirPath := os.Getenv("PROPGRID_HOME")
	if baseDirPath == "" {
		baseDirPath = os.Getenv("HOME") + "/.config/propgrid"
	} else {
		baseDirPath = strings.TrimRight(baseDirPath, "/")
	}

	// read config from file
	yamlData, err := os.ReadFile(baseDirPath + "/" + "config.yaml")
	if err != nil {
		log.Debug().Err(err).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	registry := edit.NewRegistry()
	editors.RegisterBuiltins(registry)

	controller, err := NewController(*stylesheet, configData.Keys, registry, demoRows())
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("could not set up the demo")
	}

	controller.Run()
	return nil
}

// demoRows returns the example properties the demo grid is filled with,
// covering each builtin editor.
func demoRows() []*grid.Row {
	return []*grid.Row{
		{Label: "Name", Property: model.NewStringProperty("Name", "example"), EditorName: "Text"},
		{Label: "Count", Property: model.NewIntProperty("Count", 5), EditorName: "Spin"},
		{Label: "Color", Property: model.NewEnumProperty("Color", []string{"red", "green", "blue"}, 0), EditorName: "Choice"},
		{Label: "Visible", Property: model.NewBoolProperty("Visible", true), EditorName: "CheckBox"},
		{Label: "Due", Property: model.NewDateProperty("Due", time.Now()), EditorName: "DatePicker"},
		{Label: "Path", Property: model.NewStringProperty("Path", "/tmp/example"), EditorName: "TextAndButton"},
		{Label: "Size", Property: model.NewEnumProperty("Size", []string{"small", "medium", "large"}, 1), EditorName: "ChoiceAndButton"},
	}
}
