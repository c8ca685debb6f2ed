// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "time"

// ConnectionRef identifies the connection a command event used.
type ConnectionRef struct {
	// ID is the driver-assigned connection id.
	ID int64
	// ServerConnectionID is the server-assigned connection id, when known.
	ServerConnectionID *int64
	Address             Address
}

// CommandStartedEvent is the domain event published when a command
// begins executing (spec §3).
type CommandStartedEvent struct {
	Command     *Document
	DatabaseName string
	CommandName  string
	RequestID    int64
	Connection   ConnectionRef
	ServiceID    *ServiceID
}

// CommandSucceededEvent is the domain event published when a command
// completes successfully (spec §3).
type CommandSucceededEvent struct {
	Reply        *Document
	CommandName  string
	RequestID    int64
	Connection   ConnectionRef
	ServiceID    *ServiceID
	Duration     time.Duration
}

// CommandFailedEvent is the domain event published when a command fails
// (spec §3). Wrap Failure with [NewRedactedError] to suppress the
// `failure` field in the emitted record.
type CommandFailedEvent struct {
	Failure      error
	CommandName  string
	RequestID    int64
	Connection   ConnectionRef
	ServiceID    *ServiceID
	Duration     time.Duration
}

// CommandEventHandler is the producer-side capability [CommandEventEmitter]
// implements; the command executor (out of scope) invokes it directly.
type CommandEventHandler interface {
	HandleCommandStartedEvent(CommandStartedEvent)
	HandleCommandSucceededEvent(CommandSucceededEvent)
	HandleCommandFailedEvent(CommandFailedEvent)
}

// PoolOptions carries the subset of pool configuration pool-created
// events report.
type PoolOptions struct {
	MaxIdleTime *Uint128
	MaxPoolSize *uint32
	MinPoolSize *uint32
}

type PoolCreatedEvent struct {
	Address Address
	Options *PoolOptions
}

type PoolReadyEvent struct {
	Address Address
}

type PoolClearedEvent struct {
	Address   Address
	ServiceID *ServiceID
}

type PoolClosedEvent struct {
	Address Address
}

type ConnectionCreatedEvent struct {
	Address      Address
	ConnectionID int64
}

type ConnectionReadyEvent struct {
	Address      Address
	ConnectionID int64
}

type ConnectionClosedEvent struct {
	Address      Address
	ConnectionID int64
	Reason       ConnectionClosedReason
}

type ConnectionCheckoutStartedEvent struct {
	Address Address
}

type ConnectionCheckoutFailedEvent struct {
	Address Address
	Reason  CheckoutFailedReason
}

type ConnectionCheckedOutEvent struct {
	Address      Address
	ConnectionID int64
}

type ConnectionCheckedInEvent struct {
	Address      Address
	ConnectionID int64
}

// CmapEventHandler is the producer-side capability [ConnectionEventEmitter]
// implements; the connection pool (out of scope) invokes it directly. The
// name matches the original source's term for the connection-monitoring-
// and-pooling subsystem.
type CmapEventHandler interface {
	HandlePoolCreatedEvent(PoolCreatedEvent)
	HandlePoolReadyEvent(PoolReadyEvent)
	HandlePoolClearedEvent(PoolClearedEvent)
	HandlePoolClosedEvent(PoolClosedEvent)
	HandleConnectionCreatedEvent(ConnectionCreatedEvent)
	HandleConnectionReadyEvent(ConnectionReadyEvent)
	HandleConnectionClosedEvent(ConnectionClosedEvent)
	HandleConnectionCheckoutStartedEvent(ConnectionCheckoutStartedEvent)
	HandleConnectionCheckoutFailedEvent(ConnectionCheckoutFailedEvent)
	HandleConnectionCheckedOutEvent(ConnectionCheckedOutEvent)
	HandleConnectionCheckedInEvent(ConnectionCheckedInEvent)
}

type ServerDescriptionChangedEvent struct {
	Address             Address
	TopologyID           ObjectID
	PreviousDescription ServerDescription
	NewDescription       ServerDescription
}

type ServerDescriptionOpeningEvent struct {
	Address    Address
	TopologyID ObjectID
}

type ServerDescriptionClosedEvent struct {
	Address    Address
	TopologyID ObjectID
}

type TopologyDescriptionChangedEvent struct {
	TopologyID           ObjectID
	PreviousDescription TopologyDescription
	NewDescription       TopologyDescription
}

type TopologyDescriptionOpeningEvent struct {
	TopologyID ObjectID
}

type TopologyDescriptionClosedEvent struct {
	TopologyID ObjectID
}

type ServerHeartbeatStartedEvent struct {
	Address  Address
	Awaited  bool
}

type ServerHeartbeatSucceededEvent struct {
	Address  Address
	Awaited  bool
	Duration time.Duration
	Reply    *Document
}

type ServerHeartbeatFailedEvent struct {
	Address  Address
	Awaited  bool
	Duration time.Duration
	Failure  error
}

// SDAMEventHandler is the producer-side capability [SDAMEventEmitter]
// implements; the topology monitor (out of scope) invokes it directly.
type SDAMEventHandler interface {
	HandleServerDescriptionChangedEvent(ServerDescriptionChangedEvent)
	HandleServerDescriptionOpeningEvent(ServerDescriptionOpeningEvent)
	HandleServerDescriptionClosedEvent(ServerDescriptionClosedEvent)
	HandleTopologyDescriptionChangedEvent(TopologyDescriptionChangedEvent)
	HandleTopologyDescriptionOpeningEvent(TopologyDescriptionOpeningEvent)
	HandleTopologyDescriptionClosedEvent(TopologyDescriptionClosedEvent)
	HandleServerHeartbeatStartedEvent(ServerHeartbeatStartedEvent)
	HandleServerHeartbeatSucceededEvent(ServerHeartbeatSucceededEvent)
	HandleServerHeartbeatFailedEvent(ServerHeartbeatFailedEvent)
}
