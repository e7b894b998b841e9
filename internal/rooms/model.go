package rooms

import (
	"sync"
	"time"

	"typerace/internal/broadcast"
	"typerace/internal/events"
)

type State string

const (
	StateWaiting   = State("waiting")
	StateCountdown = State("countdown")
	StateRacing    = State("racing")
	StateFinished  = State("finished")
)

// Multiplayer rooms hold at most four racers.
const maxPlayers = 4

// member pairs a player's wire state with its join sequence number. The
// sequence decides host succession: lowest surviving number becomes host.
type member struct {
	player events.Player
	seq    int
}

// Room is the unit of coordination: membership, race state and the
// broadcast group for its members. All mutable fields are guarded by the
// room's own mutex, never by a registry-wide lock.
type Room struct {
	ID          string
	Settings    events.Settings
	CreatedAt   time.Time
	Broadcaster *broadcast.Broadcaster

	mu        sync.Mutex
	hostID    string
	state     State
	text      string
	startTime int64 // unix ms, zero until racing
	members   map[string]*member
	nextSeq   int
}

func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Room) HostID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hostID
}

func (r *Room) HasPlayer(connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.members[connID]
	return ok
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// View returns the full serialization sent to members. The race text is
// withheld while the room is still waiting.
func (r *Room) View() events.RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewLocked()
}

// Preview returns the reduced get-room projection; it works in every state
// and never exposes the text.
func (r *Room) Preview() events.RoomPreview {
	r.mu.Lock()
	defer r.mu.Unlock()
	return events.RoomPreview{
		ID:          r.ID,
		PlayerCount: len(r.members),
		State:       string(r.state),
		Settings:    r.Settings,
	}
}

func (r *Room) viewLocked() events.RoomView {
	ordered := make([]*member, 0, len(r.members))
	for _, m := range r.members {
		ordered = append(ordered, m)
	}
	sortBySeq(ordered)

	players := make([]events.Player, len(ordered))
	for i, m := range ordered {
		players[i] = m.player
	}

	text := ""
	if r.state != StateWaiting {
		text = r.text
	}

	return events.RoomView{
		ID:        r.ID,
		HostID:    r.hostID,
		Players:   players,
		Settings:  r.Settings,
		State:     string(r.state),
		Text:      text,
		StartTime: r.startTime,
	}
}

func sortBySeq(ms []*member) {
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms); j++ {
			if ms[j].seq < ms[i].seq {
				ms[i], ms[j] = ms[j], ms[i]
			}
		}
	}
}
