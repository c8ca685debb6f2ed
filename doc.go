// SPDX-License-Identifier: GPL-3.0-or-later

// Package clusterlog is the structured-event observability core of a
// database-cluster client: it converts operational activity (command
// execution, connection-pool transitions, server-discovery-and-monitoring
// events) into structured log records, and provides a test-harness
// subscriber that buffers, filters, and delivers those records to
// assertion code.
//
// # Core Abstraction
//
// Three independent emitters convert typed domain events into structured
// records published through [log/slog]:
//
//   - [CommandEventEmitter]: command started/succeeded/failed
//   - [ConnectionEventEmitter]: connection-pool and connection lifecycle
//   - [SDAMEventEmitter]: server/topology description changes, heartbeats
//
// Each emitter is stateless besides its constructor inputs and implements
// a distinct producer-side handler interface ([CommandEventHandler],
// [CmapEventHandler], [SDAMEventHandler]); there is no shared base type.
//
// # Observability
//
// Emitters log at [slog.LevelDebug] to a fixed target ([TargetCommand],
// [TargetConnection], [TargetSDAM]) through a *[slog.Logger]. By default
// that means whatever handler the host process installed via
// [slog.SetDefault]; production builds pay no overhead beyond what the
// installed handler's Enabled returns false for.
//
// For tests, [Hub] implements [slog.Handler] and can be installed as the
// process-wide default via [Hub.InstallAsDefault]. It gates events with a
// per-target maximum verbosity ([Hub.SetLevels]) and fans them out to any
// number of [Subscriber] handles via a bounded broadcast channel. Because
// the logging facade admits only one active collector per process,
// [MergeLevels] flattens the per-client verbosity configuration of a
// declarative test file into the single map [Hub.SetLevels] expects.
//
// # Payload Truncation
//
// Serialized command, reply and heartbeat-reply payloads are truncated
// with [TruncateOnBoundary], which always rounds up to the nearest UTF-8
// character boundary rather than splitting a code point — see
// [SerializeDocument]. Server and topology descriptions are rendered in
// full, without truncation (see [DescriptionRepresentation]).
//
// # Test-Mode client_id
//
// Every emitter accepts an optional client identifier. Its presence as a
// field on emitted events is gated at compile time (build tag, not a
// runtime branch) in clientid.go/clientid_testmode.go: test builds
// (`-tags clusterlog_testmode`) attach it, production builds never do,
// because tests assert on the field's absence in production-mode events.
//
// # Non-goals
//
// This package does not persist events, ship them over a network, sample
// them, or correlate spans. It performs one-shot, per-event formatting and
// fan-out. URI parsing, session pooling, change streams, the CRUD surface,
// encryption, and the declarative test runner itself are all external
// collaborators this package only interfaces with, never implements.
package clusterlog
