package editors

import (
	"github.com/ja-he/propgrid/internal/edit"
)

// RegisterBuiltins registers the builtin editors with the given registry
// under their canonical names.
func RegisterBuiltins(r *edit.Registry) {
	r.Register(Text{})
	r.Register(Choice{})
	r.Register(CheckBox{})
	r.Register(Spin{})
	r.Register(DatePicker{})
	r.Register(TextAndButton{})
	r.Register(ChoiceAndButton{})
}
