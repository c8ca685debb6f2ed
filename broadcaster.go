// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// broadcastChannelCapacity is the fixed buffer depth of each subscriber's
// event channel (spec §5, "Bounded fan-out"). A slow subscriber that
// cannot keep up is never allowed to block publication; it instead
// starts losing events, counted in droppedCount, and the next read from
// it panics rather than silently returning gap-free history (spec §5,
// §7 "Lag is fatal").
const broadcastChannelCapacity = 10000

// broadcaster fans a single stream of [*Event] values out to any number
// of live subscriptions, following the same non-blocking
// select/default-send-and-count-drops shape the retrieved WebSocket
// broadcast helper uses to protect a hot publication path from slow
// consumers.
type broadcaster struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]*subscriberState
}

type subscriberState struct {
	ch      chan *Event
	dropped atomic.Uint64
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subscribers: make(map[uuid.UUID]*subscriberState)}
}

func (b *broadcaster) add() (uuid.UUID, *subscriberState) {
	id := uuid.New()
	state := &subscriberState{ch: make(chan *Event, broadcastChannelCapacity)}
	b.mu.Lock()
	b.subscribers[id] = state
	b.mu.Unlock()
	return id, state
}

func (b *broadcaster) remove(id uuid.UUID) {
	b.mu.Lock()
	delete(b.subscribers, id)
	b.mu.Unlock()
}

// publish delivers ev to every live subscriber without blocking; a
// subscriber whose buffer is full has its drop counter incremented
// instead (spec §5, §7).
func (b *broadcaster) publish(ev *Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, state := range b.subscribers {
		select {
		case state.ch <- ev:
		default:
			state.dropped.Add(1)
		}
	}
}
