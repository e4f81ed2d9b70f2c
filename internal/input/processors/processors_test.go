package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/control/action"
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {

	x := input.Key{Key: tcell.KeyRune, Ch: 'x'}
	y := input.Key{Key: tcell.KeyRune, Ch: 'y'}

	makeTree := func(t *testing.T, spec map[input.Keyspec]action.Action) *input.Tree {
		tree, err := input.ConstructInputTree(spec)
		if err != nil {
			t.Fatal("unexpected error constructing tree:", err.Error())
		}
		return tree
	}

	t.Run("delegates to base absent overlays", func(t *testing.T) {
		baseCount := 0
		p := processors.NewModalInputProcessor(makeTree(t, map[input.Keyspec]action.Action{
			"x": action.NewSimple(func() string { return "base x" }, func() { baseCount++ }),
		}))

		if !p.ProcessInput(x) || baseCount != 1 {
			t.Error("base processor did not process input")
		}
		if p.ProcessInput(y) {
			t.Error("unmapped input claimed to apply")
		}
	})

	t.Run("overlay masks base until popped", func(t *testing.T) {
		baseCount, overlayCount := 0, 0
		p := processors.NewModalInputProcessor(makeTree(t, map[input.Keyspec]action.Action{
			"x": action.NewSimple(func() string { return "base x" }, func() { baseCount++ }),
		}))
		p.ApplyModalOverlay(makeTree(t, map[input.Keyspec]action.Action{
			"x": action.NewSimple(func() string { return "overlay x" }, func() { overlayCount++ }),
		}))

		p.ProcessInput(x)
		if baseCount != 0 || overlayCount != 1 {
			t.Errorf("overlay did not mask base (base:%d, overlay:%d)", baseCount, overlayCount)
		}

		if err := p.PopModalOverlay(); err != nil {
			t.Fatal("unexpected error popping overlay:", err.Error())
		}
		p.ProcessInput(x)
		if baseCount != 1 || overlayCount != 1 {
			t.Errorf("base not reinstated after pop (base:%d, overlay:%d)", baseCount, overlayCount)
		}
	})

	t.Run("PopModalOverlays pops down to index", func(t *testing.T) {
		counts := [3]int{}
		p := processors.NewModalInputProcessor(input.EmptyTree())
		index := p.ApplyModalOverlay(makeTree(t, map[input.Keyspec]action.Action{
			"x": action.NewSimple(func() string { return "overlay 0" }, func() { counts[0]++ }),
		}))
		p.ApplyModalOverlay(makeTree(t, map[input.Keyspec]action.Action{
			"x": action.NewSimple(func() string { return "overlay 1" }, func() { counts[1]++ }),
		}))
		p.ApplyModalOverlay(makeTree(t, map[input.Keyspec]action.Action{
			"x": action.NewSimple(func() string { return "overlay 2" }, func() { counts[2]++ }),
		}))

		p.PopModalOverlays(index)
		if p.ProcessInput(x) {
			t.Error("input applied despite all overlays (and empty base) removed")
		}
		if counts != [3]int{} {
			t.Errorf("popped overlays processed input: %v", counts)
		}
	})

	t.Run("pop on empty overlay stack errors", func(t *testing.T) {
		p := processors.NewModalInputProcessor(input.EmptyTree())
		if err := p.PopModalOverlay(); err == nil {
			t.Error("expected error popping from empty overlay stack")
		}
	})
}

func TestEditInputProcessor(t *testing.T) {

	t.Run("mapped session keys take precedence", func(t *testing.T) {
		committed := false
		fallbackCount := 0
		p, err := processors.NewEditInputProcessor(
			map[input.Keyspec]action.Action{
				"<cr>": action.NewSimple(func() string { return "commits" }, func() { committed = true }),
			},
			func(input.Key) bool { fallbackCount++; return true },
		)
		if err != nil {
			t.Fatal("unexpected error constructing processor:", err.Error())
		}

		if !p.ProcessInput(input.Key{Key: tcell.KeyEnter}) || !committed {
			t.Error("mapped session key did not perform action")
		}
		if fallbackCount != 0 {
			t.Error("mapped session key leaked to fallback")
		}
	})

	t.Run("unmapped input forwarded to fallback", func(t *testing.T) {
		var forwarded []input.Key
		p, err := processors.NewEditInputProcessor(
			map[input.Keyspec]action.Action{},
			func(key input.Key) bool { forwarded = append(forwarded, key); return key.Ch == 'a' },
		)
		if err != nil {
			t.Fatal("unexpected error constructing processor:", err.Error())
		}

		if !p.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'a'}) {
			t.Error("fallback-applied input claimed not to apply")
		}
		if p.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'b'}) {
			t.Error("fallback-rejected input claimed to apply")
		}
		if len(forwarded) != 2 {
			t.Errorf("expected 2 forwarded keys, got %d", len(forwarded))
		}
	})

	t.Run("captures input", func(t *testing.T) {
		p, err := processors.NewEditInputProcessor(
			map[input.Keyspec]action.Action{},
			func(input.Key) bool { return false },
		)
		if err != nil {
			t.Fatal("unexpected error constructing processor:", err.Error())
		}
		if !p.CapturesInput() {
			t.Error("edit processor should capture input")
		}
	})

	t.Run("multi-key keyspec rejected", func(t *testing.T) {
		_, err := processors.NewEditInputProcessor(
			map[input.Keyspec]action.Action{
				"ab": action.NewSimple(func() string { return "" }, func() {}),
			},
			func(input.Key) bool { return false },
		)
		if err == nil {
			t.Error("expected error for multi-key keyspec")
		}
	})
}
