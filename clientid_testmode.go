//go:build clusterlog_testmode

// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import "log/slog"

// appendClientIDAttrs is the test-mode variant (build with
// `-tags clusterlog_testmode`): it attaches the client_id field whenever
// the emitter was constructed with one (invariant I3). See clientid.go
// for the production variant.
func appendClientIDAttrs(attrs []slog.Attr, clientID *string) []slog.Attr {
	if clientID != nil {
		return append(attrs, slog.String(attrKeyClientID, *clientID))
	}
	return attrs
}
