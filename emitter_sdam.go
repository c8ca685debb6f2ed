// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"log/slog"

	"github.com/bassosimone/runtimex"
)

// NewSDAMEventEmitter returns a new [*SDAMEventEmitter].
func NewSDAMEventEmitter(logger *slog.Logger, maxDocumentLengthBytes int, clientID *string) *SDAMEventEmitter {
	runtimex.Assert(logger != nil)
	return &SDAMEventEmitter{
		logger:                  logger,
		maxDocumentLengthBytes: maxDocumentLengthBytes,
		clientID:                clientID,
	}
}

// SDAMEventEmitter converts server/topology description and heartbeat
// events into structured log records at [TargetSDAM] (spec §4.5). Unlike
// command and connection events, SDAM events carry no fixed message
// string across the external contract; the messages below describe each
// event but are not themselves part of the stability guarantee (spec
// §6). Safe for concurrent use for the same reason [CommandEventEmitter] is.
type SDAMEventEmitter struct {
	logger                  *slog.Logger
	maxDocumentLengthBytes int
	clientID                *string
}

var _ SDAMEventHandler = &SDAMEventEmitter{}

// emit publishes a record built from attrs. Callers must already have
// checked logger.Enabled before building attrs (see each Handle*
// method); this keeps the expensive DescriptionRepresentation/
// SerializeDocument calls behind that check instead of after it, the
// same discipline [CommandEventEmitter] follows.
func (e *SDAMEventEmitter) emit(ctx context.Context, message string, attrs []slog.Attr) {
	attrs = append([]slog.Attr{slog.String(attrKeyTarget, TargetSDAM)}, attrs...)
	attrs = appendClientIDAttrs(attrs, e.clientID)
	e.logger.LogAttrs(ctx, slog.LevelDebug, message, attrs...)
}

func topologyIDAttr(id ObjectID) slog.Attr {
	return slog.String("topology_id", id.Hex())
}

// HandleServerDescriptionChangedEvent implements [SDAMEventHandler]. The
// previous/new descriptions render with no truncation (spec §4.2, §4.5).
func (e *SDAMEventEmitter) HandleServerDescriptionChangedEvent(ev ServerDescriptionChangedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(addressAttrs(ev.Address),
		topologyIDAttr(ev.TopologyID),
		slog.String("previous_description", DescriptionRepresentation("server description", ev.PreviousDescription)),
		slog.String("new_description", DescriptionRepresentation("server description", ev.NewDescription)),
	)
	e.emit(ctx, "Server description changed", attrs)
}

// HandleServerDescriptionOpeningEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleServerDescriptionOpeningEvent(ev ServerDescriptionOpeningEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(addressAttrs(ev.Address), topologyIDAttr(ev.TopologyID))
	e.emit(ctx, "Server description opening", attrs)
}

// HandleServerDescriptionClosedEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleServerDescriptionClosedEvent(ev ServerDescriptionClosedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(addressAttrs(ev.Address), topologyIDAttr(ev.TopologyID))
	e.emit(ctx, "Server description closed", attrs)
}

// HandleTopologyDescriptionChangedEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleTopologyDescriptionChangedEvent(ev TopologyDescriptionChangedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		topologyIDAttr(ev.TopologyID),
		slog.String("previous_description", DescriptionRepresentation("topology description", ev.PreviousDescription)),
		slog.String("new_description", DescriptionRepresentation("topology description", ev.NewDescription)),
	}
	e.emit(ctx, "Topology description changed", attrs)
}

// HandleTopologyDescriptionOpeningEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleTopologyDescriptionOpeningEvent(ev TopologyDescriptionOpeningEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	e.emit(ctx, "Topology description opening", []slog.Attr{topologyIDAttr(ev.TopologyID)})
}

// HandleTopologyDescriptionClosedEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleTopologyDescriptionClosedEvent(ev TopologyDescriptionClosedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	e.emit(ctx, "Topology description closed", []slog.Attr{topologyIDAttr(ev.TopologyID)})
}

// HandleServerHeartbeatStartedEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleServerHeartbeatStartedEvent(ev ServerHeartbeatStartedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(addressAttrs(ev.Address), slog.Bool("awaited", ev.Awaited))
	e.emit(ctx, "Server heartbeat started", attrs)
}

// HandleServerHeartbeatSucceededEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleServerHeartbeatSucceededEvent(ev ServerHeartbeatSucceededEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(addressAttrs(ev.Address),
		slog.Bool("awaited", ev.Awaited),
		slog.Uint64("duration_ms", uint64(ev.Duration.Milliseconds())),
		slog.String("reply", SerializeDocument(ev.Reply, e.maxDocumentLengthBytes)),
	)
	e.emit(ctx, "Server heartbeat succeeded", attrs)
}

// HandleServerHeartbeatFailedEvent implements [SDAMEventHandler].
func (e *SDAMEventEmitter) HandleServerHeartbeatFailedEvent(ev ServerHeartbeatFailedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := append(addressAttrs(ev.Address),
		slog.Bool("awaited", ev.Awaited),
		slog.Uint64("duration_ms", uint64(ev.Duration.Milliseconds())),
		slog.String("failure", ErrorRepresentation(ev.Failure)),
	)
	e.emit(ctx, "Server heartbeat failed", attrs)
}
