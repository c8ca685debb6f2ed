// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"log/slog"

	"github.com/bassosimone/runtimex"
)

// NewCommandEventEmitter returns a new [*CommandEventEmitter].
//
// logger is the [*slog.Logger] to publish events through; pass
// slog.Default() to use whatever handler the process currently has
// installed (see [Hub.InstallAsDefault] for the test-harness case).
func NewCommandEventEmitter(logger *slog.Logger, maxDocumentLengthBytes int, clientID *string) *CommandEventEmitter {
	runtimex.Assert(logger != nil)
	return &CommandEventEmitter{
		logger:                  logger,
		maxDocumentLengthBytes: maxDocumentLengthBytes,
		clientID:                clientID,
	}
}

// CommandEventEmitter converts [CommandStartedEvent]/[CommandSucceededEvent]/
// [CommandFailedEvent] domain events into structured log records at
// [TargetCommand] (spec §4.3). It is stateless besides its constructor
// inputs and safe for concurrent use by multiple producer goroutines,
// since it holds only immutable configuration and a *[slog.Logger], which
// is itself safe for concurrent use.
type CommandEventEmitter struct {
	logger                  *slog.Logger
	maxDocumentLengthBytes int
	clientID                *string
}

var _ CommandEventHandler = &CommandEventEmitter{}

// HandleCommandStartedEvent implements [CommandEventHandler].
func (e *CommandEventEmitter) HandleCommandStartedEvent(ev CommandStartedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String(attrKeyTarget, TargetCommand),
		slog.String("command", SerializeDocument(ev.Command, e.maxDocumentLengthBytes)),
		slog.String("database_name", ev.DatabaseName),
		slog.String("command_name", ev.CommandName),
		slog.Int64("request_id", ev.RequestID),
		slog.Int64("driver_connection_id", ev.Connection.ID),
	}
	if ev.Connection.ServerConnectionID != nil {
		attrs = append(attrs, slog.Int64("server_connection_id", *ev.Connection.ServerConnectionID))
	}
	attrs = append(attrs, slog.String("server_host", ev.Connection.Address.Host))
	if ev.Connection.Address.Port != nil {
		attrs = append(attrs, slog.Uint64("server_port", *ev.Connection.Address.Port))
	}
	if ev.ServiceID != nil {
		attrs = append(attrs, slog.String("service_id", ev.ServiceID.Hex()))
	}
	attrs = appendClientIDAttrs(attrs, e.clientID)
	e.logger.LogAttrs(ctx, slog.LevelDebug, MessageCommandStarted, attrs...)
}

// HandleCommandSucceededEvent implements [CommandEventHandler].
func (e *CommandEventEmitter) HandleCommandSucceededEvent(ev CommandSucceededEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String(attrKeyTarget, TargetCommand),
		slog.String("reply", SerializeDocument(ev.Reply, e.maxDocumentLengthBytes)),
		slog.String("command_name", ev.CommandName),
		slog.Int64("request_id", ev.RequestID),
		slog.Int64("driver_connection_id", ev.Connection.ID),
	}
	if ev.Connection.ServerConnectionID != nil {
		attrs = append(attrs, slog.Int64("server_connection_id", *ev.Connection.ServerConnectionID))
	}
	attrs = append(attrs, slog.String("server_host", ev.Connection.Address.Host))
	if ev.Connection.Address.Port != nil {
		attrs = append(attrs, slog.Uint64("server_port", *ev.Connection.Address.Port))
	}
	if ev.ServiceID != nil {
		attrs = append(attrs, slog.String("service_id", ev.ServiceID.Hex()))
	}
	attrs = append(attrs, slog.Uint64("duration_ms", uint64(ev.Duration.Milliseconds())))
	attrs = appendClientIDAttrs(attrs, e.clientID)
	e.logger.LogAttrs(ctx, slog.LevelDebug, MessageCommandSucceeded, attrs...)
}

// HandleCommandFailedEvent implements [CommandEventHandler]. The
// `failure` field is omitted entirely when ev.Failure is classified as
// redacted ([IsRedacted]); every other field is unchanged (spec §4.3,
// §6, P4).
func (e *CommandEventEmitter) HandleCommandFailedEvent(ev CommandFailedEvent) {
	ctx := context.Background()
	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String(attrKeyTarget, TargetCommand),
	}
	if !IsRedacted(ev.Failure) {
		attrs = append(attrs, slog.String("failure", ErrorRepresentation(ev.Failure)))
	}
	attrs = append(attrs,
		slog.String("command_name", ev.CommandName),
		slog.Int64("request_id", ev.RequestID),
		slog.Int64("driver_connection_id", ev.Connection.ID),
	)
	if ev.Connection.ServerConnectionID != nil {
		attrs = append(attrs, slog.Int64("server_connection_id", *ev.Connection.ServerConnectionID))
	}
	attrs = append(attrs, slog.String("server_host", ev.Connection.Address.Host))
	if ev.Connection.Address.Port != nil {
		attrs = append(attrs, slog.Uint64("server_port", *ev.Connection.Address.Port))
	}
	if ev.ServiceID != nil {
		attrs = append(attrs, slog.String("service_id", ev.ServiceID.Hex()))
	}
	attrs = append(attrs, slog.Uint64("duration_ms", uint64(ev.Duration.Milliseconds())))
	attrs = appendClientIDAttrs(attrs, e.clientID)
	e.logger.LogAttrs(ctx, slog.LevelDebug, MessageCommandFailed, attrs...)
}
