// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

// ObjectID is a 12-byte identifier, modeled after the BSON ObjectId this
// core's documents may contain.
type ObjectID [12]byte

var objectIDCounter uint32

// NewObjectID returns a fresh [ObjectID]: a 4-byte timestamp, 5 random
// bytes, and a 3-byte monotonic counter, matching the well-known BSON
// ObjectId layout closely enough for this package's purposes (uniqueness
// and a stable hex rendering), without depending on a full BSON library.
func NewObjectID() ObjectID {
	var id ObjectID
	now := uint32(time.Now().Unix())
	id[0] = byte(now >> 24)
	id[1] = byte(now >> 16)
	id[2] = byte(now >> 8)
	id[3] = byte(now)
	if _, err := rand.Read(id[4:9]); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is broken;
		// fall back to the zero value for those bytes rather than panic.
		for i := 4; i < 9; i++ {
			id[i] = 0
		}
	}
	c := atomic.AddUint32(&objectIDCounter, 1)
	id[9] = byte(c >> 16)
	id[10] = byte(c >> 8)
	id[11] = byte(c)
	return id
}

// ObjectIDFromHex parses a 24-character lowercase or uppercase hex string
// into an [ObjectID].
func ObjectIDFromHex(s string) (ObjectID, error) {
	var id ObjectID
	if len(s) != 24 {
		return id, fmt.Errorf("clusterlog: invalid ObjectID length %d", len(s))
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("clusterlog: invalid ObjectID hex: %w", err)
	}
	copy(id[:], decoded)
	return id, nil
}

// Hex returns the 24-character lowercase hex representation of the
// ObjectID, which is also its tracing representation (spec §4.2).
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String implements [fmt.Stringer] and returns the same value as [ObjectID.Hex].
func (id ObjectID) String() string {
	return id.Hex()
}
