package styling

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLighten(t *testing.T) {
	t.Run("0% -> no change", func(t *testing.T) {
		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		result := lightenColorfulColor(input, 0)
		if !result.AlmostEqualRgb(input) {
			t.Errorf("lightening by 0%% changed color: %s instead of %s", result.Hex(), input.Hex())
		}
	})
	t.Run("100% -> white", func(t *testing.T) {
		input := colorful.Color{
			R: float64(0x12) / 255.0,
			G: float64(0x34) / 255.0,
			B: float64(0x56) / 255.0,
		}

		expected := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(input, 100)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("lightening by 100%% did not yield white: %s", result.Hex())
		}
	})
}

func TestDarken(t *testing.T) {
	t.Run("100% -> black", func(t *testing.T) {
		input := colorful.Color{
			R: float64(0xab) / 255.0,
			G: float64(0xcd) / 255.0,
			B: float64(0xef) / 255.0,
		}

		expected := colorful.Color{R: 0.0, G: 0.0, B: 0.0}
		result := darkenColorfulColor(input, 100)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("darkening by 100%% did not yield black: %s", result.Hex())
		}
	})
}

func TestInverted(t *testing.T) {
	s := StyleFromHex("#ff0000", "#0000ff")
	inverted, ok := s.Inverted().(*FallbackStyling)
	if !ok {
		t.Fatal("inverted styling is not a FallbackStyling")
	}
	if !inverted.fg.AlmostEqualRgb(s.bg) || !inverted.bg.AlmostEqualRgb(s.fg) {
		t.Errorf("inverting did not swap colors: %s", inverted.ToString())
	}
}
