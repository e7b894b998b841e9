// Package race sequences race starts and ingests progress reports.
package race

import (
	"time"

	"typerace/internal/rooms"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultCountdown slightly exceeds the client's 3-second visual countdown
// so the text is never revealed before the animation ends.
const DefaultCountdown = 3500 * time.Millisecond

type Coordinator struct {
	rooms     *rooms.Store
	clock     clockwork.Clock
	countdown time.Duration
}

func NewCoordinator(store *rooms.Store, clock clockwork.Clock, countdown time.Duration) *Coordinator {
	if countdown <= 0 {
		countdown = DefaultCountdown
	}
	return &Coordinator{
		rooms:     store,
		clock:     clock,
		countdown: countdown,
	}
}

// Start begins the countdown for a room on behalf of its host. The ack to
// the caller is synchronous; the transition to racing happens later on a
// one-shot timer. The timer closes over the room id only and re-resolves it
// against the registry when it fires: by then the room may have been
// deleted or swept, in which case the transition is a no-op.
func (c *Coordinator) Start(roomID, requesterID string) error {
	room := c.rooms.Get(roomID)
	if room == nil {
		return rooms.ErrRoomNotFound
	}
	if err := room.BeginCountdown(requesterID); err != nil {
		return err
	}
	log.Info().Str("room", room.ID).Str("host", requesterID).Msg("countdown started")

	id := room.ID
	c.clock.AfterFunc(c.countdown, func() {
		r := c.rooms.Get(id)
		if r == nil {
			log.Debug().Str("room", id).Msg("countdown elapsed for missing room")
			return
		}
		if r.BeginRacing(c.clock.Now()) {
			log.Info().Str("room", id).Msg("race started")
		}
	})
	return nil
}

// ReportProgress relays a client progress report into the room. Stray
// reports (unknown room, race not running, non-member) are dropped without
// error: there is no ack channel to complain on.
func (c *Coordinator) ReportProgress(roomID, connID string, progress, wpm float64) {
	room := c.rooms.Get(roomID)
	if room == nil {
		return
	}
	if room.ApplyProgress(connID, progress, wpm, c.clock.Now()) && room.State() == rooms.StateFinished {
		log.Info().Str("room", room.ID).Msg("race finished")
	}
}
