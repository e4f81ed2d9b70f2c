// Package model provides the value model edited through a property grid:
// dynamically-typed values and the properties holding them.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the layout for date values' string form.
const DateLayout = "2006-01-02"

// ValueKind enumerates the kinds of value a property can hold.
type ValueKind int

const (
	// KindUnspecified describes the absence of a determinate value.
	KindUnspecified ValueKind = iota
	// KindString describes a string value.
	KindString
	// KindInt describes an integer value.
	KindInt
	// KindBool describes a boolean value.
	KindBool
	// KindDate describes a (day-granular) date value.
	KindDate
)

// ToString returns the name of this value kind, primarily for debugging and
// logging purposes.
func (k ValueKind) ToString() string {
	switch k {
	case KindUnspecified:
		return "unspecified"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	}
	return "[UNKNOWN]"
}

// A Value is a dynamically-typed value held by a property or produced by an
// edit.
//
// The zero Value is the unspecified value.
type Value struct {
	kind ValueKind
	str  string
	num  int
	flag bool
	date time.Time
}

// UnspecifiedValue returns the value representing "no determinate value".
func UnspecifiedValue() Value { return Value{} }

// StringValue returns a value of the given string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue returns a value of the given integer.
func IntValue(i int) Value { return Value{kind: KindInt, num: i} }

// BoolValue returns a value of the given boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

// DateValue returns a value of the given time, truncated to its date.
func DateValue(t time.Time) Value {
	year, month, day := t.Date()
	return Value{kind: KindDate, date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Kind returns the kind of this value.
func (v Value) Kind() ValueKind { return v.kind }

// IsUnspecified indicates whether this value is the unspecified value.
func (v Value) IsUnspecified() bool { return v.kind == KindUnspecified }

// String returns the display form of this value.
// The unspecified value has an empty display form.
func (v Value) String() string {
	switch v.kind {
	case KindUnspecified:
		return ""
	case KindString:
		return v.str
	case KindInt:
		return fmt.Sprintf("%d", v.num)
	case KindBool:
		if v.flag {
			return "true"
		}
		return "false"
	case KindDate:
		return v.date.Format(DateLayout)
	}
	panic(fmt.Sprintf("value of invalid kind %d", v.kind))
}

// Int returns the integral form of this value: the value itself for an
// integer, 0/1 for a boolean, and 0 for all other kinds.
func (v Value) Int() int {
	switch v.kind {
	case KindInt:
		return v.num
	case KindBool:
		if v.flag {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Bool returns the boolean form of this value (false for non-boolean kinds).
func (v Value) Bool() bool { return v.kind == KindBool && v.flag }

// Date returns the date form of this value (the zero time for non-date
// kinds).
func (v Value) Date() time.Time {
	if v.kind != KindDate {
		return time.Time{}
	}
	return v.date
}

// Equal indicates whether this value equals the given value in kind and
// content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindUnspecified:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	case KindDate:
		return v.date.Equal(o.date)
	}
	return false
}
