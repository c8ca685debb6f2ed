// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventFilter reports whether ev matches a [Subscriber] query. A nil
// filter matches every event.
type EventFilter func(ev *Event) bool

// Subscriber receives every [Event] a [Hub] publishes from the moment
// [Hub.Subscribe] returns it. Obtain one with [Hub.Subscribe] and
// release it with Close once done.
type Subscriber struct {
	b     *broadcaster
	id    uuid.UUID
	state *subscriberState
}

// Close unregisters the subscription. Further sends to it are dropped
// by the broadcaster rather than delivered.
func (s *Subscriber) Close() {
	s.b.remove(s.id)
}

// checkLag panics if events were dropped because this subscriber fell
// behind the bounded channel capacity (spec §7, "Lag is fatal"): a test
// assertion built on a gap-free event stream must never silently
// proceed on a stream with a gap in it.
func (s *Subscriber) checkLag() {
	if dropped := s.state.dropped.Swap(0); dropped > 0 {
		panic(fmt.Sprintf("clusterlog: subscriber %s lagged, %d event(s) dropped", s.id, dropped))
	}
}

// WaitForEvent blocks until an event matching filter arrives, ctx is
// done, or timeout elapses, whichever comes first. Events that do not
// match filter are discarded, not requeued. Passing a nil filter
// matches the next event regardless of shape.
//
// Returns the matching event and true, or nil and false if ctx/timeout
// expired first. Panics if the subscriber lagged (see checkLag).
func (s *Subscriber) WaitForEvent(ctx context.Context, timeout time.Duration, filter EventFilter) (*Event, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case ev := <-s.state.ch:
			s.checkLag()
			if filter == nil || filter(ev) {
				return ev, true
			}
		case <-ctx.Done():
			s.checkLag()
			return nil, false
		case <-deadline.C:
			s.checkLag()
			return nil, false
		}
	}
}

// CollectEvents accumulates every event matching filter, returning them
// in arrival order once ctx is done or a full timeout elapses with no
// matching event; each match restarts the timeout. A nil filter collects
// every event. Panics if the subscriber lagged (see checkLag).
func (s *Subscriber) CollectEvents(ctx context.Context, timeout time.Duration, filter EventFilter) []*Event {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var collected []*Event
	for {
		select {
		case ev := <-s.state.ch:
			s.checkLag()
			if filter == nil || filter(ev) {
				collected = append(collected, ev)
				deadline.Reset(timeout)
			}
		case <-ctx.Done():
			s.checkLag()
			return collected
		case <-deadline.C:
			s.checkLag()
			return collected
		}
	}
}
