// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

// DefaultMaxDocumentLengthBytes is the default byte budget applied to
// serialized command, reply, and heartbeat-reply payloads (spec §6).
const DefaultMaxDocumentLengthBytes = 1000

// Config holds common configuration for emitter construction.
//
// No constructor takes a *Config; its fields supply the
// maxDocumentLengthBytes and clientID arguments of the emitter
// constructors. It follows the same shape as the rest of this package's
// ancestry: a struct of sensible defaults plus one constructor.
type Config struct {
	// MaxDocumentLengthBytes bounds the serialized length of command,
	// reply, and heartbeat-reply payloads. Applied identically to both.
	//
	// Set by [NewConfig] to [DefaultMaxDocumentLengthBytes].
	MaxDocumentLengthBytes int

	// ClientID, if non-nil, is attached as the client_id field on every
	// event this client's emitters publish, but only in builds compiled
	// with the clusterlog_testmode build tag (see clientid.go).
	//
	// Set by [NewConfig] to nil.
	ClientID *string
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		MaxDocumentLengthBytes: DefaultMaxDocumentLengthBytes,
		ClientID:               nil,
	}
}
