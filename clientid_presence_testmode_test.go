//go:build clusterlog_testmode

// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertClientIDPresence checks invariant I3's test-mode half: the
// client_id field is attached whenever an emitter was constructed with
// one. See clientid_presence_notestmode_test.go for the other half.
func assertClientIDPresence(t *testing.T, present bool) {
	t.Helper()
	assert.True(t, present, "client_id must appear in a clusterlog_testmode build")
}
