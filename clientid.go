//go:build !clusterlog_testmode

// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "log/slog"

// appendClientIDAttrs is the production variant: the client_id field is
// never attached, regardless of whether the emitter was constructed with
// one (invariant I3). This is a build-time gate rather than a runtime
// branch because tests assert on the field's absence in production-mode
// events via a separate build (spec §9, design note "Compile-time field
// inclusion"); see clientid_testmode.go for the other variant.
func appendClientIDAttrs(attrs []slog.Attr, clientID *string) []slog.Attr {
	return attrs
}
