package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// A Property holds a named value that can be edited through a property grid.
//
// A property converts between its value domain and the string/int forms
// produced by editor controls; conversion failure is the property's concern,
// editors only forward whether a conversion produced a changed value.
type Property interface {
	// Name returns the name of the property.
	Name() string

	// Value returns the current value.
	Value() Value

	// SetValue applies a new value.
	// This is reserved to the owner of the property (the grid); editors must
	// never call this.
	SetValue(v Value)

	// IsUnspecified indicates whether the property currently has no
	// determinate value.
	IsUnspecified() bool

	// SetUnspecified clears the property to "no determinate value".
	SetUnspecified()

	// ValueString returns the display form of the current value.
	ValueString() string

	// ValueInt returns the integral form of the current value.
	ValueInt() int

	// StringToValue converts a display string to a value of this property's
	// domain.
	StringToValue(s string) (Value, error)

	// IntToValue converts an integer (e.g. a selection index) to a value of
	// this property's domain.
	IntToValue(i int) (Value, error)
}

// BaseProperty is the base data and implementation shared by the concrete
// property types.
type BaseProperty struct {
	name  string
	value Value
}

// Name returns the name of the property.
func (p *BaseProperty) Name() string { return p.name }

// Value returns the current value.
func (p *BaseProperty) Value() Value { return p.value }

// SetValue applies a new value.
func (p *BaseProperty) SetValue(v Value) { p.value = v }

// IsUnspecified indicates whether the property currently has no determinate
// value.
func (p *BaseProperty) IsUnspecified() bool { return p.value.IsUnspecified() }

// SetUnspecified clears the property to "no determinate value".
func (p *BaseProperty) SetUnspecified() { p.value = UnspecifiedValue() }

// ValueString returns the display form of the current value.
func (p *BaseProperty) ValueString() string { return p.value.String() }

// ValueInt returns the integral form of the current value.
func (p *BaseProperty) ValueInt() int { return p.value.Int() }

// StringProperty is a property holding a plain string.
type StringProperty struct {
	BaseProperty
}

// NewStringProperty constructs a string property with the given initial
// value.
func NewStringProperty(name, value string) *StringProperty {
	return &StringProperty{BaseProperty{name: name, value: StringValue(value)}}
}

// StringToValue converts any string to a string value.
func (p *StringProperty) StringToValue(s string) (Value, error) {
	return StringValue(s), nil
}

// IntToValue converts the given integer to its decimal string value.
func (p *StringProperty) IntToValue(i int) (Value, error) {
	return StringValue(strconv.Itoa(i)), nil
}

// IntProperty is a property holding an integer.
type IntProperty struct {
	BaseProperty
}

// NewIntProperty constructs an integer property with the given initial value.
func NewIntProperty(name string, value int) *IntProperty {
	return &IntProperty{BaseProperty{name: name, value: IntValue(value)}}
}

// StringToValue parses the given string as a decimal integer.
func (p *IntProperty) StringToValue(s string) (Value, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return UnspecifiedValue(), fmt.Errorf("cannot parse '%s' as integer (%w)", s, err)
	}
	return IntValue(i), nil
}

// IntToValue converts the given integer to an integer value.
func (p *IntProperty) IntToValue(i int) (Value, error) {
	return IntValue(i), nil
}

// BoolProperty is a property holding a boolean.
type BoolProperty struct {
	BaseProperty
}

// NewBoolProperty constructs a boolean property with the given initial value.
func NewBoolProperty(name string, value bool) *BoolProperty {
	return &BoolProperty{BaseProperty{name: name, value: BoolValue(value)}}
}

// StringToValue parses the given string as a boolean.
func (p *BoolProperty) StringToValue(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return BoolValue(true), nil
	case "false", "no", "0":
		return BoolValue(false), nil
	}
	return UnspecifiedValue(), fmt.Errorf("cannot parse '%s' as boolean", s)
}

// IntToValue converts the given integer to a boolean value (0 is false,
// anything else is true).
func (p *BoolProperty) IntToValue(i int) (Value, error) {
	return BoolValue(i != 0), nil
}

// EnumProperty is a property holding one of a fixed set of labeled choices.
// Its value is the integer index of the held choice.
type EnumProperty struct {
	BaseProperty
	choices []string
}

// NewEnumProperty constructs an enum property over the given choices with the
// given initially selected index.
func NewEnumProperty(name string, choices []string, selected int) *EnumProperty {
	value := UnspecifiedValue()
	if selected >= 0 && selected < len(choices) {
		value = IntValue(selected)
	}
	return &EnumProperty{
		BaseProperty: BaseProperty{name: name, value: value},
		choices:      choices,
	}
}

// Choices returns the labels of the available choices.
func (p *EnumProperty) Choices() []string { return p.choices }

// ValueString returns the label of the currently held choice.
func (p *EnumProperty) ValueString() string {
	if p.IsUnspecified() {
		return ""
	}
	index := p.ValueInt()
	if index < 0 || index >= len(p.choices) {
		return ""
	}
	return p.choices[index]
}

// StringToValue converts a choice label to the value indexing it.
func (p *EnumProperty) StringToValue(s string) (Value, error) {
	for i, choice := range p.choices {
		if choice == s {
			return IntValue(i), nil
		}
	}
	return UnspecifiedValue(), fmt.Errorf("'%s' is not among the available choices", s)
}

// IntToValue converts a choice index to the value indexing it.
func (p *EnumProperty) IntToValue(i int) (Value, error) {
	if i < 0 || i >= len(p.choices) {
		return UnspecifiedValue(), fmt.Errorf("choice index %d out of range [0,%d)", i, len(p.choices))
	}
	return IntValue(i), nil
}

// DateProperty is a property holding a (day-granular) date.
type DateProperty struct {
	BaseProperty
}

// NewDateProperty constructs a date property with the given initial value.
func NewDateProperty(name string, value time.Time) *DateProperty {
	return &DateProperty{BaseProperty{name: name, value: DateValue(value)}}
}

// StringToValue parses the given string as a date in "YYYY-MM-DD" form.
func (p *DateProperty) StringToValue(s string) (Value, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return UnspecifiedValue(), fmt.Errorf("cannot parse '%s' as date (%w)", s, err)
	}
	return DateValue(t), nil
}

// IntToValue is not meaningful for dates and always errors.
func (p *DateProperty) IntToValue(i int) (Value, error) {
	return UnspecifiedValue(), fmt.Errorf("date property does not convert from int (%d)", i)
}
