//go:build !clusterlog_testmode

// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertClientIDPresence checks invariant I3's production-build half: the
// client_id field is never attached, even when an emitter was
// constructed with one. Build with -tags clusterlog_testmode to run the
// test-mode half instead (see clientid_presence_testmode_test.go).
func assertClientIDPresence(t *testing.T, present bool) {
	t.Helper()
	assert.False(t, present, "client_id must not appear in a production build")
}
