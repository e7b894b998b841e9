package server

import (
	"net/http"

	"typerace/internal/config"
	"typerace/internal/race"
	"typerace/internal/rooms"

	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func Run() error {
	cfg := config.Load()
	clock := clockwork.NewRealClock()

	roomStore := rooms.NewStore(clock, rooms.Config{
		Retention:     cfg.RoomRetention,
		SweepInterval: cfg.SweepInterval,
	})
	coordinator := race.NewCoordinator(roomStore, clock, cfg.Countdown)

	srv := &Server{
		Rooms: roomStore,
		Race:  coordinator,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/health", srv.handleHealth)

	// Clients are served from another origin; mirror the relay's open CORS.
	handler := cors.AllowAll().Handler(mux)

	addr := "0.0.0.0:" + cfg.Port
	log.Info().Str("addr", addr).Msg("server listening")
	return http.ListenAndServe(addr, handler)
}
