package rooms

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"typerace/internal/broadcast"
	"typerace/internal/events"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Config carries the registry's maintenance tunables.
type Config struct {
	Retention     time.Duration // rooms older than this are swept
	SweepInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Retention:     1 * time.Hour,
		SweepInterval: 10 * time.Minute,
	}
}

// Store is the process-wide room registry. The store mutex guards only the
// map; each Room carries its own lock.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	clock clockwork.Clock
	cfg   Config
}

func NewStore(clock clockwork.Clock, cfg Config) *Store {
	s := &Store{
		rooms: make(map[string]*Room),
		clock: clock,
		cfg:   cfg,
	}
	go s.sweepStale()
	return s
}

// Create allocates a fresh room with the creating connection as sole player
// and host. The creator's send channel joins the broadcast group
// immediately so it sees every subsequent event.
func (s *Store) Create(connID, name, carID string, settings events.Settings, text string, send chan<- []byte) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for i := 0; i < 10; i++ {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}

		room := &Room{
			ID:          code,
			Settings:    settings,
			CreatedAt:   s.clock.Now(),
			Broadcaster: broadcast.New(),
			hostID:      connID,
			state:       StateWaiting,
			text:        text,
			members:     make(map[string]*member),
		}
		room.members[connID] = &member{
			player: events.Player{ID: connID, Name: name, CarID: carID},
			seq:    room.nextSeq,
		}
		room.nextSeq++
		room.Broadcaster.Join(connID, send)

		s.rooms[code] = room
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

// Get looks a room up by code, case-insensitively.
func (s *Store) Get(code string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[strings.ToUpper(code)]
}

func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, strings.ToUpper(code))
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}

func (s *Store) sweepStale() {
	ticker := s.clock.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for range ticker.Chan() {
		s.sweepOnce(s.clock.Now())
	}
}

// sweepOnce deletes every room past the retention window, regardless of
// state. Rooms simply vanish; stale references resolve to "not found" on
// the next command.
func (s *Store) sweepOnce(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for code, room := range s.rooms {
		if now.Sub(room.CreatedAt) > s.cfg.Retention {
			delete(s.rooms, code)
			log.Info().Str("room", code).Msg("swept stale room")
		}
	}
}
