package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ja-he/propgrid/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty yaml yields defaults", func(t *testing.T) {
		parsed, err := config.ParseConfigAugmentDefaults(config.Light, []byte(""))
		if err != nil {
			t.Fatal("unexpected error on empty yaml:", err.Error())
		}
		if diff := cmp.Diff(config.Default(config.Light), parsed); diff != "" {
			t.Errorf("empty yaml changed defaults (-want +got):\n%s", diff)
		}
	})

	t.Run("stylesheet entry overrides default", func(t *testing.T) {
		yamlData := []byte(`
stylesheet:
  editor:
    fg: '#123456'
    bg: '#654321'
`)
		parsed, err := config.ParseConfigAugmentDefaults(config.Dark, yamlData)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if parsed.Stylesheet.Editor.Fg != "#123456" || parsed.Stylesheet.Editor.Bg != "#654321" {
			t.Errorf("editor styling not overridden: %+v", parsed.Stylesheet.Editor)
		}
		if diff := cmp.Diff(config.Default(config.Dark).Stylesheet.Status, parsed.Stylesheet.Status); diff != "" {
			t.Errorf("unrelated styling changed (-want +got):\n%s", diff)
		}
	})

	t.Run("key bindings override wholesale", func(t *testing.T) {
		yamlData := []byte(`
keys:
  grid:
    "x": quit
`)
		parsed, err := config.ParseConfigAugmentDefaults(config.Light, yamlData)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if len(parsed.Keys.Grid) != 1 || parsed.Keys.Grid["x"] != "quit" {
			t.Errorf("grid bindings not overridden: %+v", parsed.Keys.Grid)
		}
		if diff := cmp.Diff(config.Default(config.Light).Keys.Session, parsed.Keys.Session); diff != "" {
			t.Errorf("session bindings changed despite absent override (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Light, []byte("stylesheet: ["))
		if err == nil {
			t.Error("expected error on invalid yaml")
		}
	})
}
