package server

import (
	"errors"
	"fmt"
	"net/http"

	"typerace/internal/events"
	"typerace/internal/quotes"
	"typerace/internal/race"
	"typerace/internal/rooms"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Error strings as clients expect them in acks.
const (
	msgRoomNotFound   = "Room not found"
	msgRaceInProgress = "Race already in progress"
	msgRoomFull       = "Room is full (max 4 players)"
	msgNotHost        = "Only host can start the race"
)

// Cosmetic payload fields default instead of erroring.
const (
	defaultPlayerName = "Player"
	defaultCarID      = "c1"
)

type Server struct {
	Rooms *rooms.Store
	Race  *race.Coordinator
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Error().Err(err).Msg("websocket accept failed")
		return
	}
	defer conn.CloseNow()

	connID := uuid.New().String()
	log.Info().Str("conn", connID).Msg("client connected")

	c := newClient(connID)
	ctx := r.Context()
	go c.writePump(ctx, conn)

	for {
		var cmd events.Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			break
		}
		s.dispatch(c, cmd)
	}

	log.Info().Str("conn", connID).Msg("client disconnected")
	s.cleanupConnection(connID)
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) dispatch(c *client, cmd events.Command) {
	switch cmd.T {
	case events.CmdCreateRoom:
		s.handleCreateRoom(c, cmd)
	case events.CmdJoinRoom:
		s.handleJoinRoom(c, cmd)
	case events.CmdGetRoom:
		s.handleGetRoom(c, cmd)
	case events.CmdStartRace:
		s.handleStartRace(c, cmd)
	case events.CmdRaceProgress:
		s.Race.ReportProgress(cmd.RoomID, c.id, cmd.Progress, cmd.WPM)
	case events.CmdLeaveRoom:
		s.leaveRoom(cmd.RoomID, c.id)
	default:
		log.Warn().Str("conn", c.id).Str("command", cmd.T).Msg("unknown command")
	}
}

func (s *Server) handleCreateRoom(c *client, cmd events.Command) {
	settings := events.Settings{WordCount: 25, Mode: "multiplayer"}
	if cmd.Settings != nil {
		settings = *cmd.Settings
		if settings.Mode == "" {
			settings.Mode = "multiplayer"
		}
	}
	name := cmd.PlayerName
	if name == "" {
		name = defaultPlayerName
	}
	carID := cmd.CarID
	if carID == "" {
		carID = defaultCarID
	}
	text := cmd.Text
	if text == "" {
		text = quotes.Pick(settings.WordCount, settings.UseAI, settings.IncludeCapitals)
	}

	room, err := s.Rooms.Create(c.id, name, carID, settings, text, c.send)
	if err != nil {
		log.Error().Err(err).Str("conn", c.id).Msg("create room failed")
		s.ack(c, cmd, events.Ack{Error: "Failed to create room"})
		return
	}

	log.Info().Str("room", room.ID).Str("host", c.id).Msg("room created")
	s.ack(c, cmd, events.Ack{Success: true, RoomID: room.ID, Room: room.View()})
}

func (s *Server) handleJoinRoom(c *client, cmd events.Command) {
	room := s.Rooms.Get(cmd.RoomID)
	if room == nil {
		s.ack(c, cmd, events.Ack{Error: msgRoomNotFound})
		return
	}

	name := cmd.PlayerName
	if name == "" {
		name = defaultPlayerName
	}
	carID := cmd.CarID
	if carID == "" {
		carID = defaultCarID
	}

	if _, err := room.Join(c.id, name, carID, c.send); err != nil {
		s.ack(c, cmd, events.Ack{Error: errorMessage(err)})
		return
	}

	log.Info().Str("room", room.ID).Str("conn", c.id).Msg("player joined")
	s.ack(c, cmd, events.Ack{Success: true, Room: room.View()})
}

func (s *Server) handleGetRoom(c *client, cmd events.Command) {
	room := s.Rooms.Get(cmd.RoomID)
	if room == nil {
		s.ack(c, cmd, events.Ack{Error: msgRoomNotFound})
		return
	}
	s.ack(c, cmd, events.Ack{Success: true, Room: room.Preview()})
}

func (s *Server) handleStartRace(c *client, cmd events.Command) {
	if err := s.Race.Start(cmd.RoomID, c.id); err != nil {
		s.ack(c, cmd, events.Ack{Error: errorMessage(err)})
		return
	}
	s.ack(c, cmd, events.Ack{Success: true})
}

func (s *Server) leaveRoom(roomID, connID string) {
	room := s.Rooms.Get(roomID)
	if room == nil {
		return
	}
	removed, empty := room.Leave(connID)
	if !removed {
		return
	}
	log.Info().Str("room", room.ID).Str("conn", connID).Msg("player left")
	if empty {
		s.Rooms.Delete(room.ID)
		log.Info().Str("room", room.ID).Msg("room deleted (empty)")
	}
}

// cleanupConnection handles the implicit leave on disconnect. A connection
// is only ever in one room in practice, but every room is scanned anyway.
func (s *Server) cleanupConnection(connID string) {
	for _, room := range s.Rooms.List() {
		if room.HasPlayer(connID) {
			s.leaveRoom(room.ID, connID)
		}
	}
}

func (s *Server) ack(c *client, cmd events.Command, ack events.Ack) {
	if cmd.Seq == 0 {
		return
	}
	ack.T = events.TypeAck
	ack.Seq = cmd.Seq
	c.enqueue(ack)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		return msgRoomNotFound
	case errors.Is(err, rooms.ErrRaceInProgress):
		return msgRaceInProgress
	case errors.Is(err, rooms.ErrRoomFull):
		return msgRoomFull
	case errors.Is(err, rooms.ErrNotHost):
		return msgNotHost
	default:
		return err.Error()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, `{"status":"ok"}`)
}
