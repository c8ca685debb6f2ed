// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "fmt"

// FieldKind discriminates the variants [FieldValue] can hold.
type FieldKind uint8

const (
	FieldKindFloat64 FieldKind = iota
	FieldKindInt64
	FieldKindUint64
	FieldKindInt128
	FieldKindUint128
	FieldKindBool
	FieldKindString
)

// FieldValue is a typed field value retained on an [Event], distinct
// from [slog.Value] so that a subscriber can recover a field's original
// Go type rather than only its formatted text (spec §9, "Retaining
// typed field values").
type FieldValue struct {
	kind  FieldKind
	f64   float64
	i64   int64
	u64   uint64
	i128  Int128
	u128  Uint128
	b     bool
	s     string
}

// Kind reports which variant v holds.
func (v FieldValue) Kind() FieldKind { return v.kind }

func float64FieldValue(f float64) FieldValue   { return FieldValue{kind: FieldKindFloat64, f64: f} }
func int64FieldValue(i int64) FieldValue       { return FieldValue{kind: FieldKindInt64, i64: i} }
func uint64FieldValue(u uint64) FieldValue     { return FieldValue{kind: FieldKindUint64, u64: u} }
func int128FieldValue(i Int128) FieldValue     { return FieldValue{kind: FieldKindInt128, i128: i} }
func uint128FieldValue(u Uint128) FieldValue   { return FieldValue{kind: FieldKindUint128, u128: u} }
func boolFieldValue(b bool) FieldValue         { return FieldValue{kind: FieldKindBool, b: b} }
func stringFieldValue(s string) FieldValue     { return FieldValue{kind: FieldKindString, s: s} }

// Float64 returns the wrapped value and whether v holds a float64.
func (v FieldValue) Float64() (float64, bool) { return v.f64, v.kind == FieldKindFloat64 }

// Int64 returns the wrapped value and whether v holds an int64.
func (v FieldValue) Int64() (int64, bool) { return v.i64, v.kind == FieldKindInt64 }

// Uint64 returns the wrapped value and whether v holds a uint64.
func (v FieldValue) Uint64() (uint64, bool) { return v.u64, v.kind == FieldKindUint64 }

// Int128 returns the wrapped value and whether v holds an [Int128].
func (v FieldValue) Int128() (Int128, bool) { return v.i128, v.kind == FieldKindInt128 }

// Uint128 returns the wrapped value and whether v holds a [Uint128].
func (v FieldValue) Uint128() (Uint128, bool) { return v.u128, v.kind == FieldKindUint128 }

// Bool returns the wrapped value and whether v holds a bool.
func (v FieldValue) Bool() (bool, bool) { return v.b, v.kind == FieldKindBool }

// String returns the wrapped value's textual form regardless of kind,
// matching the way the original source's `get_value_as_string` accessor
// renders any retained field as text for assertion convenience.
func (v FieldValue) String() string {
	switch v.kind {
	case FieldKindFloat64:
		return fmt.Sprintf("%g", v.f64)
	case FieldKindInt64:
		return fmt.Sprintf("%d", v.i64)
	case FieldKindUint64:
		return fmt.Sprintf("%d", v.u64)
	case FieldKindInt128:
		return v.i128.String()
	case FieldKindUint128:
		return v.u128.String()
	case FieldKindBool:
		return fmt.Sprintf("%t", v.b)
	case FieldKindString:
		return v.s
	default:
		return ""
	}
}

// Field is a single name/value pair retained on an [Event].
type Field struct {
	Name  string
	Value FieldValue
}

// Event is the materialized structured event a [Subscriber] receives:
// [Hub.Handle]'s reconstruction of a [log/slog.Record] into the shape
// C3's emitters originally published (spec §5).
type Event struct {
	Level   Level
	Target  string
	Message string
	Fields  []Field
}

// Field returns the named field's value and whether it was present.
func (e *Event) Field(name string) (FieldValue, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return FieldValue{}, false
}

// String returns the named field's string representation, panicking if
// the field is absent. Mirrors the original source's
// `get_value_as_string`, which a test harness calls only after already
// asserting the field's presence.
func (e *Event) String(name string) string {
	v, ok := e.Field(name)
	if !ok {
		panic(fmt.Sprintf("clusterlog: event %q has no field %q", e.Message, name))
	}
	return v.String()
}

// ClientID returns the event's client_id field, if any (invariant I3).
// Always returns false when built without the clusterlog_testmode build
// tag, since the field is never attached in that configuration.
func (e *Event) ClientID() (string, bool) {
	v, ok := e.Field(attrKeyClientID)
	if !ok {
		return "", false
	}
	return v.String(), true
}
