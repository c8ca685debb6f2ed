// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"fmt"
	"strings"
)

// Level is the verbosity of a structured event.
//
// Unlike [slog.Level], which has four built-in values, this core needs
// five (the original Rust source keeps a Trace variant "for completeness"
// even though no emission site currently uses it), so [Hub] reads an
// event's [Level] from a reserved attribute rather than from the slog
// record's built-in level. The emitters in this package do not attach
// that attribute; [Hub] treats such events as [LevelDebug], the level
// they all publish at.
//
// Ordering is verbosity, not severity: Error is the least verbose, Trace
// the most. The zero value is [LevelError].
type Level int8

const (
	// LevelError is the least verbose level.
	LevelError Level = iota
	// LevelWarn is more verbose than [LevelError].
	LevelWarn
	// LevelInfo is more verbose than [LevelWarn].
	LevelInfo
	// LevelDebug is more verbose than [LevelInfo]. All event emitters in
	// this package currently publish at this level.
	LevelDebug
	// LevelTrace is the most verbose level.
	LevelTrace
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// ParseLevel parses a case-insensitive level name as used in declarative
// test-file `observe_log_messages` mappings (e.g. "debug", "Info").
//
// Returns an error if s does not name one of the five levels.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("clusterlog: unknown level %q", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler so [Level] can appear directly
// in declarative test-file structures (see testspec.go).
func (l *Level) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// EnabledAt reports whether an event at level eventLevel should be
// published given a configured maximum verbosity max.
//
// Per spec: enabled iff eventLevel is at least as severe (i.e. no more
// verbose) than the configured maximum, which under this package's
// ordering (Error < Warn < Info < Debug < Trace, Trace most verbose)
// is eventLevel <= max. Scenarios exercising Debug events against a
// Debug threshold (max == LevelDebug) must be enabled, matching the
// semantic intent rather than either raw historical comparison
// direction the original source's two revisions disagreed on.
func EnabledAt(eventLevel, max Level) bool {
	return eventLevel <= max
}

// Max returns the more verbose of a and b.
func (l Level) Max(other Level) Level {
	if other > l {
		return other
	}
	return l
}
