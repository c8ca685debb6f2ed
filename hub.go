// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/bassosimone/runtimex"
)

// Hub is a [slog.Handler] that reconstructs every record C3's emitters
// publish into an [Event] and fans it out to any number of live
// [Subscriber] values, while also enforcing a per-target maximum
// verbosity (spec §5, C4).
//
// The zero value is not usable; construct with [NewHub].
type Hub struct {
	b *broadcaster

	mu          sync.RWMutex
	levels      map[string]Level
	levelsGuard bool
}

// NewHub returns a new [*Hub] with an empty level map. An empty level
// map observes nothing: every target is disabled until [Hub.SetLevels]
// configures it (spec §4.5, "An empty result is valid and disables all
// test-side observation").
func NewHub() *Hub {
	return &Hub{b: newBroadcaster(), levels: make(map[string]Level)}
}

var _ slog.Handler = &Hub{}

// Enabled always returns true: per-target filtering happens in Handle,
// not here, per spec §9's design note that an implementation may push
// the enabled predicate to the fan-out layer so long as field
// materialization is still gated — which it is: Handle looks up the
// target before materializing any attribute into a [Field]. Because this
// always returns true, the emitters' own logger.Enabled check does not
// skip their payload serialization when logging through a [Hub].
func (h *Hub) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

// Handle implements [slog.Handler]. It extracts the reserved target and
// level attributes, applies the per-target maximum verbosity gate, and
// otherwise materializes every attribute into a [Field], then publishes
// the resulting [Event] to all live subscribers.
func (h *Hub) Handle(ctx context.Context, record slog.Record) error {
	var target string
	var level = LevelDebug

	record.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case attrKeyTarget:
			target = attr.Value.String()
		case attrKeyLevel:
			parsed, err := ParseLevel(attr.Value.String())
			if err == nil {
				level = parsed
			}
		}
		return true
	})

	maxLevel, ok := h.maxLevelFor(target)
	if !ok || !EnabledAt(level, maxLevel) {
		return nil
	}

	fields := make([]Field, 0, record.NumAttrs())
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key != attrKeyTarget && attr.Key != attrKeyLevel {
			fields = append(fields, Field{Name: attr.Key, Value: fieldValueFromAttr(attr.Value)})
		}
		return true
	})

	h.b.publish(&Event{
		Level:   level,
		Target:  target,
		Message: record.Message,
		Fields:  fields,
	})
	return nil
}

// fieldValueFromAttr materializes a [slog.Value] into a [FieldValue],
// type-switching [slog.KindAny] payloads so [Int128]/[Uint128] fields
// keep their width-and-signedness classification (spec §9) instead of
// collapsing to a formatted string.
func fieldValueFromAttr(v slog.Value) FieldValue {
	switch v.Kind() {
	case slog.KindFloat64:
		return float64FieldValue(v.Float64())
	case slog.KindInt64:
		return int64FieldValue(v.Int64())
	case slog.KindUint64:
		return uint64FieldValue(v.Uint64())
	case slog.KindBool:
		return boolFieldValue(v.Bool())
	case slog.KindString:
		return stringFieldValue(v.String())
	case slog.KindAny:
		switch any := v.Any().(type) {
		case Int128:
			return int128FieldValue(any)
		case Uint128:
			return uint128FieldValue(any)
		case *big.Int:
			return stringFieldValue(any.String())
		default:
			return stringFieldValue(fmt.Sprintf("%v", any))
		}
	default:
		return stringFieldValue(v.String())
	}
}

// maxLevelFor reports the configured maximum verbosity for target and
// whether it is configured at all. A target absent from the level map
// is not observed: per spec §4.4/§4.5, an event for an unconfigured
// target is dropped before field materialization rather than allowed
// through at the most permissive level, and an empty level map disables
// every target rather than enabling all of them (the original source's
// `enabled` returns false when the target has no entry,
// _examples/original_source/src/test/util/trace.rs).
func (h *Hub) maxLevelFor(target string) (level Level, ok bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	level, ok = h.levels[target]
	return level, ok
}

// WithAttrs implements [slog.Handler]. This core never calls
// [slog.Logger.With], so there is nothing to merge; returning h
// unchanged keeps the same [Hub] instance as the handler.
func (h *Hub) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements [slog.Handler]. Groups are not part of this
// package's field schema (spec §3), so this is a no-op like WithAttrs.
func (h *Hub) WithGroup(name string) slog.Handler {
	return h
}

// LevelGuard restores the [Hub]'s previous per-target level map when
// released, following the scoped-guard idiom the original source's test
// harness uses for `observe_log_messages`.
type LevelGuard struct {
	h        *Hub
	previous map[string]Level
}

// Release restores the level map in effect before [Hub.SetLevels] was
// called and allows a subsequent call to [Hub.SetLevels] to succeed.
func (g *LevelGuard) Release() {
	g.h.mu.Lock()
	defer g.h.mu.Unlock()
	g.h.levels = g.previous
	g.h.levelsGuard = false
}

// SetLevels installs a per-target maximum verbosity map, returning a
// [*LevelGuard] that restores the previous map when released.
//
// Only one [LevelGuard] may be active on a [*Hub] at a time: nested
// `observe_log_messages` blocks are not supported by the original
// source either, so a second call before the first guard is released
// is a programming error caught with [runtimex.Assert] rather than
// silently overwriting state a concurrent caller may still depend on.
func (h *Hub) SetLevels(levels map[string]Level) *LevelGuard {
	h.mu.Lock()
	defer h.mu.Unlock()
	runtimex.Assert(!h.levelsGuard)

	previous := h.levels
	next := make(map[string]Level, len(levels))
	for target, level := range levels {
		next[target] = level
	}
	h.levels = next
	h.levelsGuard = true
	return &LevelGuard{h: h, previous: previous}
}

// Subscribe registers a new [*Subscriber] and returns it. The caller
// must call [Subscriber.Close] once done to release the underlying
// channel.
func (h *Hub) Subscribe() *Subscriber {
	id, state := h.b.add()
	return &Subscriber{b: h.b, id: id, state: state}
}

// DefaultGuard restores whatever [*slog.Logger] was installed via
// [slog.SetDefault] before [Hub.InstallAsDefault] was called.
type DefaultGuard struct {
	previous *slog.Logger
}

// Release restores the previously installed default logger.
func (g *DefaultGuard) Release() {
	slog.SetDefault(g.previous)
}

// InstallAsDefault installs h as the handler behind [slog.Default],
// returning a [*DefaultGuard] that restores whatever was installed
// before. This is the mechanism a test harness uses to intercept every
// event C3's emitters publish through slog.Default() without threading
// a *[slog.Logger] through the whole call stack.
func (h *Hub) InstallAsDefault() *DefaultGuard {
	previous := slog.Default()
	slog.SetDefault(slog.New(h))
	return &DefaultGuard{previous: previous}
}
