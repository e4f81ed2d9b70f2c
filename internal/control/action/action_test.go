package action_test

import (
	"testing"

	"github.com/ja-he/propgrid/internal/control/action"
)

func TestSimple(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		performed := false

		s := action.NewSimple(func() string { return "sets flag" }, func() { performed = true })
		s.Do()

		if !performed {
			t.Error("action was not executed (flag unchanged)")
		}
	})

	t.Run("Undo does nothing", func(t *testing.T) {
		count := 0
		s := action.NewSimple(func() string { return "counts" }, func() { count++ })
		s.Do()
		s.Undo()
		if count != 1 {
			t.Error("undo changed state of simple action")
		}
	})

	t.Run("Undoable", func(t *testing.T) {
		s := action.NewSimple(func() string { return "does nothing" }, func() {})
		if s.Undoable() {
			t.Error("simple action claims to be undoable")
		}
	})

	t.Run("Explain reflects explainer", func(t *testing.T) {
		e := "does nothing"
		s := action.NewSimple(func() string { return e }, func() {})
		if s.Explain() != "does nothing" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		e = "does nothing, very well"
		if s.Explain() != "does nothing, very well" {
			t.Error("changed explanation wrong:", s.Explain())
		}
	})
}
