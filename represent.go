// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "fmt"

// ConnectionClosedReason enumerates why a connection was closed (spec §4.2).
type ConnectionClosedReason uint8

const (
	ConnectionClosedStale ConnectionClosedReason = iota
	ConnectionClosedIdle
	ConnectionClosedError
	ConnectionClosedDropped
	ConnectionClosedPoolClosed
)

// String returns the exact human prose this package's external contract
// fixes for each reason (spec §4.2, invariant I4). These strings must not
// change without a version bump.
func (r ConnectionClosedReason) String() string {
	switch r {
	case ConnectionClosedStale:
		return "Connection became stale because the pool was cleared"
	case ConnectionClosedIdle:
		return "Connection has been available but unused for longer than the configured max idle time"
	case ConnectionClosedError:
		return "An error occurred while using the connection"
	case ConnectionClosedDropped:
		return "Connection was dropped during an operation"
	case ConnectionClosedPoolClosed:
		return "Connection pool was closed"
	default:
		return fmt.Sprintf("unknown connection closed reason (%d)", uint8(r))
	}
}

// CheckoutFailedReason enumerates why a connection checkout failed (spec §4.2).
type CheckoutFailedReason uint8

const (
	CheckoutFailedTimeout CheckoutFailedReason = iota
	CheckoutFailedConnectionError
)

// String returns the exact human prose this package's external contract
// fixes for each reason (spec §4.2). These strings must not change
// without a version bump.
func (r CheckoutFailedReason) String() string {
	switch r {
	case CheckoutFailedTimeout:
		return "Wait queue timeout elapsed without a connection becoming available"
	case CheckoutFailedConnectionError:
		return "An error occurred while trying to establish a connection"
	default:
		return fmt.Sprintf("unknown checkout failed reason (%d)", uint8(r))
	}
}

// ErrorRepresentation is the tracing representation of an error: its
// display form (spec §4.2). A nil error renders as the empty string.
func ErrorRepresentation(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// DescriptionRepresentation renders a [Describable] (a server or topology
// description) as canonical extended JSON, with no truncation. If the
// projection fails, it returns the fixed fallback string "Failed to
// serialize <kind>: <error>" instead of propagating the error — emission
// is always best-effort (spec §4.2, §7).
func DescriptionRepresentation(kind string, d Describable) string {
	proj, err := d.CanonicalProjection()
	if err != nil {
		return fmt.Sprintf("Failed to serialize %s: %s", kind, err)
	}
	text, err := proj.MarshalCanonicalExtJSON()
	if err != nil {
		return fmt.Sprintf("Failed to serialize %s: %s", kind, err)
	}
	return text
}
