// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubscriberWaitForEventFiltersNonMatching(t *testing.T) {
	b := newBroadcaster()
	id, state := b.add()
	defer b.remove(id)
	sub := &Subscriber{b: b, id: id, state: state}

	b.publish(&Event{Target: TargetCommand, Message: "Command started"})
	b.publish(&Event{Target: TargetCommand, Message: "Command succeeded"})

	ev, ok := sub.WaitForEvent(context.Background(), time.Second, func(e *Event) bool {
		return e.Message == "Command succeeded"
	})
	require.True(t, ok)
	assert.Equal(t, "Command succeeded", ev.Message)
}

func TestSubscriberWaitForEventTimesOut(t *testing.T) {
	b := newBroadcaster()
	id, state := b.add()
	defer b.remove(id)
	sub := &Subscriber{b: b, id: id, state: state}

	_, ok := sub.WaitForEvent(context.Background(), 20*time.Millisecond, nil)
	assert.False(t, ok)
}

func TestSubscriberCollectEvents(t *testing.T) {
	b := newBroadcaster()
	id, state := b.add()
	defer b.remove(id)
	sub := &Subscriber{b: b, id: id, state: state}

	for i := 0; i < 3; i++ {
		b.publish(&Event{Target: TargetCommand, Message: "Command started"})
	}

	events := sub.CollectEvents(context.Background(), 50*time.Millisecond, nil)
	assert.Len(t, events, 3)
}

func TestSubscriberLagPanics(t *testing.T) {
	b := newBroadcaster()
	id, state := b.add()
	defer b.remove(id)
	sub := &Subscriber{b: b, id: id, state: state}

	for i := 0; i < broadcastChannelCapacity+1; i++ {
		b.publish(&Event{Target: TargetCommand, Message: "Command started"})
	}

	assert.Panics(t, func() {
		sub.CollectEvents(context.Background(), 50*time.Millisecond, nil)
	})
}

func TestSubscriberCloseStopsDelivery(t *testing.T) {
	b := newBroadcaster()
	id, state := b.add()
	sub := &Subscriber{b: b, id: id, state: state}
	sub.Close()

	b.publish(&Event{Target: TargetCommand, Message: "Command started"})

	_, ok := sub.WaitForEvent(context.Background(), 20*time.Millisecond, nil)
	assert.False(t, ok)
}
