package rooms

import (
	"time"

	"typerace/internal/events"
)

// Join admits a connection while the room is still waiting. The send
// channel is subscribed to the room's broadcast group in the same critical
// section that records membership, so the two can never drift apart.
func (r *Room) Join(connID, name, carID string, send chan<- []byte) (events.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) == 0 {
		// Room is being torn down; treat like it's already gone.
		return events.Player{}, ErrRoomNotFound
	}
	if r.state != StateWaiting {
		return events.Player{}, ErrRaceInProgress
	}
	if len(r.members) >= maxPlayers {
		return events.Player{}, ErrRoomFull
	}

	p := events.Player{ID: connID, Name: name, CarID: carID}
	r.members[connID] = &member{player: p, seq: r.nextSeq}
	r.nextSeq++
	r.Broadcaster.Join(connID, send)

	r.Broadcaster.Broadcast(events.PlayerJoined{
		T:      events.EventPlayerJoined,
		Player: p,
		Room:   r.viewLocked(),
	})
	return p, nil
}

// Leave removes a connection from the room. When the departing player was
// host, the oldest surviving member by join order takes over. The second
// return value reports whether the room is now empty; the caller is
// expected to delete empty rooms from the registry.
func (r *Room) Leave(connID string) (removed, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[connID]; !ok {
		return false, false
	}
	delete(r.members, connID)
	r.Broadcaster.Leave(connID)

	if len(r.members) == 0 {
		return true, true
	}

	if r.hostID == connID {
		r.hostID = r.oldestLocked()
	}

	r.Broadcaster.Broadcast(events.PlayerLeft{
		T:         events.EventPlayerLeft,
		PlayerID:  connID,
		NewHostID: r.hostID,
		Room:      r.viewLocked(),
	})
	return true, false
}

func (r *Room) oldestLocked() string {
	id := ""
	best := -1
	for memberID, m := range r.members {
		if best == -1 || m.seq < best {
			id, best = memberID, m.seq
		}
	}
	return id
}

// BeginCountdown moves the room from waiting to countdown. Only the host
// may trigger it, and only once: state never moves backwards.
func (r *Room) BeginCountdown(requesterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hostID != requesterID {
		return ErrNotHost
	}
	if r.state != StateWaiting {
		return ErrRaceInProgress
	}

	r.state = StateCountdown
	r.Broadcaster.Broadcast(events.RaceCountdown{
		T:    events.EventRaceCountdown,
		Room: r.viewLocked(),
	})
	return nil
}

// BeginRacing is the deferred half of the countdown: it stamps the start
// time and reveals the text. It reports false without mutating anything
// when the room has already moved on (or never reached countdown), which is
// what makes the uncancellable timer safe.
func (r *Room) BeginRacing(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateCountdown {
		return false
	}
	r.state = StateRacing
	r.startTime = now.UnixMilli()

	r.Broadcaster.Broadcast(events.RaceStart{
		T:         events.EventRaceStart,
		Text:      r.text,
		StartTime: r.startTime,
		Room:      r.viewLocked(),
	})
	return true
}

// ApplyProgress records a client progress report. Reports are dropped
// silently unless the room is racing and the reporter is a member. Crossing
// 100% marks the player finished and stamps the finish time exactly once; a
// later lower report can never undo either. Every applied report re-checks
// whether the whole field has finished.
func (r *Room) ApplyProgress(connID string, progress, wpm float64, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRacing {
		return false
	}
	m, ok := r.members[connID]
	if !ok {
		return false
	}

	m.player.Progress = progress
	m.player.WPM = wpm
	if progress >= 100 && !m.player.Finished {
		m.player.Finished = true
		m.player.FinishTime = now.UnixMilli() - r.startTime
	}

	r.Broadcaster.BroadcastExcept(connID, events.PlayerProgress{
		T:          events.EventPlayerProgress,
		PlayerID:   connID,
		Progress:   progress,
		WPM:        wpm,
		Finished:   m.player.Finished,
		FinishTime: m.player.FinishTime,
	})

	for _, other := range r.members {
		if !other.player.Finished {
			return true
		}
	}
	r.state = StateFinished
	r.Broadcaster.Broadcast(events.RaceFinished{
		T:    events.EventRaceFinished,
		Room: r.viewLocked(),
	})
	return true
}
