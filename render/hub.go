package render

import (
	"sync"
	"time"

	channerics "github.com/niceyeti/channerics/channels"
	"github.com/niceyeti/citytraffic/city"
	"github.com/niceyeti/citytraffic/sim"
	"github.com/niceyeti/citytraffic/version"
)

// Hub polls a simulator's published Traffic for new snapshots and fans
// each one out to every currently-subscribed client. Subscribers come and
// go as browsers connect and disconnect; a subscriber slow to drain its
// channel simply misses intermediate snapshots, matching the simulator's
// own "only the latest matters" publication contract.
type Hub struct {
	city  *city.City
	local *version.Local[sim.Traffic]

	mu   sync.Mutex
	subs map[chan Snapshot]struct{}
}

// NewHub returns a Hub serving snapshots of c's traffic, read from local.
func NewHub(c *city.City, local *version.Local[sim.Traffic]) *Hub {
	return &Hub{city: c, local: local, subs: map[chan Snapshot]struct{}{}}
}

// Subscribe registers a new client channel and returns it along with a
// cancel function the caller must invoke on disconnect to stop receiving
// snapshots and release the channel.
func (h *Hub) Subscribe() (ch chan Snapshot, cancel func()) {
	ch = make(chan Snapshot, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel = func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Run polls for new Traffic snapshots at the given resolution until done is
// closed, broadcasting each one to every current subscriber. A subscriber
// still holding an unread snapshot has the new one dropped for it rather
// than blocking the broadcast.
func (h *Hub) Run(done <-chan struct{}, resolution time.Duration) {
	for range channerics.NewTicker(done, resolution) {
		if !h.local.Refresh() {
			continue
		}
		snap := BuildSnapshot(h.city, h.local.Current())

		h.mu.Lock()
		for ch := range h.subs {
			select {
			case ch <- snap:
			default:
			}
		}
		h.mu.Unlock()
	}
}
