// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionEventEmitterPoolCreated(t *testing.T) {
	logger, records := newCapturingLogger()
	emitter := NewConnectionEventEmitter(logger, nil)

	maxIdle := Uint128FromUint64(600000)
	emitter.HandlePoolCreatedEvent(PoolCreatedEvent{
		Address: NewAddress("localhost", 27017),
		Options: &PoolOptions{MaxIdleTime: &maxIdle},
	})

	require.Len(t, *records, 1)
	record := (*records)[0]
	assert.Equal(t, MessagePoolCreated, record.Message)

	target, ok := recordAttr(record, attrKeyTarget)
	require.True(t, ok)
	assert.Equal(t, TargetConnection, target.String())
}

// TestConnectionEventEmitterPoolCreatedRetainsUint128 routes the event
// through a real [Hub] rather than the raw record capture above, since
// only Hub.Handle's field visitor proves max_idle_time_ms survives as a
// [Uint128] instead of collapsing to a formatted string.
func TestConnectionEventEmitterPoolCreatedRetainsUint128(t *testing.T) {
	hub := NewHub()
	logger := slog.New(hub)
	sub := hub.Subscribe()
	defer sub.Close()

	guard := hub.SetLevels(map[string]Level{TargetConnection: LevelDebug})
	defer guard.Release()

	emitter := NewConnectionEventEmitter(logger, nil)
	maxIdle := Uint128FromUint64(600000)
	emitter.HandlePoolCreatedEvent(PoolCreatedEvent{
		Address: NewAddress("localhost", 27017),
		Options: &PoolOptions{MaxIdleTime: &maxIdle},
	})

	ev, ok := sub.WaitForEvent(context.Background(), time.Second, nil)
	require.True(t, ok)

	v, ok := ev.Field("max_idle_time_ms")
	require.True(t, ok)
	u, ok := v.Uint128()
	require.True(t, ok)
	assert.Equal(t, "600000", u.String())
}

func TestConnectionEventEmitterConnectionClosedReason(t *testing.T) {
	logger, records := newCapturingLogger()
	emitter := NewConnectionEventEmitter(logger, nil)

	emitter.HandleConnectionClosedEvent(ConnectionClosedEvent{
		Address:      NewAddress("localhost", 27017),
		ConnectionID: 9,
		Reason:       ConnectionClosedIdle,
	})

	require.Len(t, *records, 1)
	reason, ok := recordAttr((*records)[0], "reason")
	require.True(t, ok)
	assert.Equal(t, ConnectionClosedIdle.String(), reason.String())
}

func TestConnectionEventEmitterAttachesClientIDOnlyViaBuildTag(t *testing.T) {
	logger, records := newCapturingLogger()
	clientID := "abc123"
	emitter := NewConnectionEventEmitter(logger, &clientID)

	emitter.HandlePoolReadyEvent(PoolReadyEvent{Address: NewAddress("localhost", 27017)})

	require.Len(t, *records, 1)
	_, present := recordAttr((*records)[0], attrKeyClientID)
	assertClientIDPresence(t, present)
}
