// Package broadcast fans room events out to the member connections.
package broadcast

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// Broadcaster is one room's delivery group. Membership must mirror the
// room's player set: every join and leave updates both together.
type Broadcaster struct {
	mu      sync.Mutex
	members map[string]chan<- []byte
}

func New() *Broadcaster {
	return &Broadcaster{
		members: make(map[string]chan<- []byte),
	}
}

// Join subscribes a connection's send channel under its connection id.
func (b *Broadcaster) Join(id string, send chan<- []byte) {
	b.mu.Lock()
	b.members[id] = send
	b.mu.Unlock()
}

func (b *Broadcaster) Leave(id string) {
	b.mu.Lock()
	delete(b.members, id)
	b.mu.Unlock()
}

func (b *Broadcaster) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.members)
}

// Broadcast sends an event to every member.
func (b *Broadcaster) Broadcast(v any) {
	b.send("", v)
}

// BroadcastExcept sends an event to every member but the sender.
func (b *Broadcaster) BroadcastExcept(senderID string, v any) {
	b.send(senderID, v)
}

func (b *Broadcaster) send(exceptID string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("broadcast marshal failed")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.members {
		if id == exceptID {
			continue
		}
		select {
		case ch <- data:
		default:
			// skip members with full send channels
		}
	}
}
