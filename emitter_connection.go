// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"log/slog"

	"github.com/bassosimone/runtimex"
)

// NewConnectionEventEmitter returns a new [*ConnectionEventEmitter].
func NewConnectionEventEmitter(logger *slog.Logger, clientID *string) *ConnectionEventEmitter {
	runtimex.Assert(logger != nil)
	return &ConnectionEventEmitter{logger: logger, clientID: clientID}
}

// ConnectionEventEmitter converts pool and connection lifecycle events
// into structured log records at [TargetConnection] (spec §4.4). Safe
// for concurrent use for the same reason [CommandEventEmitter] is.
type ConnectionEventEmitter struct {
	logger   *slog.Logger
	clientID *string
}

var _ CmapEventHandler = &ConnectionEventEmitter{}

func (e *ConnectionEventEmitter) emit(ctx context.Context, message string, attrs []slog.Attr) {
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append([]slog.Attr{slog.String(attrKeyTarget, TargetConnection)}, attrs...)
	attrs = appendClientIDAttrs(attrs, e.clientID)
	e.logger.LogAttrs(ctx, slog.LevelDebug, message, attrs...)
}

func addressAttrs(addr Address) []slog.Attr {
	attrs := []slog.Attr{slog.String("server_host", addr.Host)}
	if addr.Port != nil {
		attrs = append(attrs, slog.Uint64("server_port", *addr.Port))
	}
	return attrs
}

// HandlePoolCreatedEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandlePoolCreatedEvent(ev PoolCreatedEvent) {
	attrs := addressAttrs(ev.Address)
	if ev.Options != nil {
		if ev.Options.MaxIdleTime != nil {
			attrs = append(attrs, slog.Any("max_idle_time_ms", *ev.Options.MaxIdleTime))
		}
		if ev.Options.MaxPoolSize != nil {
			attrs = append(attrs, slog.Uint64("max_pool_size", uint64(*ev.Options.MaxPoolSize)))
		}
		if ev.Options.MinPoolSize != nil {
			attrs = append(attrs, slog.Uint64("min_pool_size", uint64(*ev.Options.MinPoolSize)))
		}
	}
	e.emit(context.Background(), MessagePoolCreated, attrs)
}

// HandlePoolReadyEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandlePoolReadyEvent(ev PoolReadyEvent) {
	e.emit(context.Background(), MessagePoolReady, addressAttrs(ev.Address))
}

// HandlePoolClearedEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandlePoolClearedEvent(ev PoolClearedEvent) {
	attrs := addressAttrs(ev.Address)
	if ev.ServiceID != nil {
		attrs = append(attrs, slog.String("service_id", ev.ServiceID.Hex()))
	}
	e.emit(context.Background(), MessagePoolCleared, attrs)
}

// HandlePoolClosedEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandlePoolClosedEvent(ev PoolClosedEvent) {
	e.emit(context.Background(), MessagePoolClosed, addressAttrs(ev.Address))
}

// HandleConnectionCreatedEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandleConnectionCreatedEvent(ev ConnectionCreatedEvent) {
	attrs := append(addressAttrs(ev.Address), slog.Int64("driver_connection_id", ev.ConnectionID))
	e.emit(context.Background(), MessageConnectionCreated, attrs)
}

// HandleConnectionReadyEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandleConnectionReadyEvent(ev ConnectionReadyEvent) {
	attrs := append(addressAttrs(ev.Address), slog.Int64("driver_connection_id", ev.ConnectionID))
	e.emit(context.Background(), MessageConnectionReady, attrs)
}

// HandleConnectionClosedEvent implements [CmapEventHandler]. The reason
// renders via [ConnectionClosedReason.String] as fixed prose (invariant I4).
func (e *ConnectionEventEmitter) HandleConnectionClosedEvent(ev ConnectionClosedEvent) {
	attrs := append(addressAttrs(ev.Address),
		slog.Int64("driver_connection_id", ev.ConnectionID),
		slog.String("reason", ev.Reason.String()),
	)
	e.emit(context.Background(), MessageConnectionClosed, attrs)
}

// HandleConnectionCheckoutStartedEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandleConnectionCheckoutStartedEvent(ev ConnectionCheckoutStartedEvent) {
	e.emit(context.Background(), MessageConnectionCheckoutStarted, addressAttrs(ev.Address))
}

// HandleConnectionCheckoutFailedEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandleConnectionCheckoutFailedEvent(ev ConnectionCheckoutFailedEvent) {
	attrs := append(addressAttrs(ev.Address), slog.String("reason", ev.Reason.String()))
	e.emit(context.Background(), MessageConnectionCheckoutFailed, attrs)
}

// HandleConnectionCheckedOutEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandleConnectionCheckedOutEvent(ev ConnectionCheckedOutEvent) {
	attrs := append(addressAttrs(ev.Address), slog.Int64("driver_connection_id", ev.ConnectionID))
	e.emit(context.Background(), MessageConnectionCheckedOut, attrs)
}

// HandleConnectionCheckedInEvent implements [CmapEventHandler].
func (e *ConnectionEventEmitter) HandleConnectionCheckedInEvent(ev ConnectionCheckedInEvent) {
	attrs := append(addressAttrs(ev.Address), slog.Int64("driver_connection_id", ev.ConnectionID))
	e.emit(context.Background(), MessageConnectionCheckedIn, attrs)
}
