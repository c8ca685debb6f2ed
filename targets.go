// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

// Target identifies the component an event belongs to. Upstream log
// routers use these stable strings for include/exclude rules; they must
// not change without a version bump (spec §6).
const (
	// TargetCommand is the target for command started/succeeded/failed events.
	TargetCommand = "db.command"
	// TargetConnection is the target for pool and connection lifecycle events.
	TargetConnection = "db.connection"
	// TargetSDAM is the target for server/topology description and heartbeat events.
	TargetSDAM = "db.sdam"
)

// Stable event messages (spec §6). SDAM events carry no stable message
// and are distinguished by target and fields instead.
const (
	MessageCommandStarted   = "Command started"
	MessageCommandSucceeded = "Command succeeded"
	MessageCommandFailed    = "Command failed"

	MessagePoolCreated = "Connection pool created"
	MessagePoolReady   = "Connection pool ready"
	MessagePoolCleared = "Connection pool cleared"
	MessagePoolClosed  = "Connection pool closed"

	MessageConnectionCreated         = "Connection created"
	MessageConnectionReady           = "Connection ready"
	MessageConnectionClosed          = "Connection closed"
	MessageConnectionCheckoutStarted = "Connection checkout started"
	MessageConnectionCheckoutFailed  = "Connection checkout failed"
	MessageConnectionCheckedOut      = "Connection checked out"
	MessageConnectionCheckedIn       = "Connection checked in"
)

// Reserved slog attribute keys used to carry event metadata that [Hub]
// pulls back out of the record in Handle. attrKeyTarget and attrKeyLevel
// are routing metadata, not part of the event's field schema (spec §3),
// and are removed from [Event.Fields] before the event reaches a
// [Subscriber]. attrKeyClientID, in contrast, is itself one of the
// fields spec §3 (invariant I3) describes and is left in place.
const (
	attrKeyTarget   = "target"
	attrKeyLevel    = "level"
	attrKeyClientID = "client_id"
)
