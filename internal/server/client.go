package server

import (
	"context"
	"encoding/json"

	"github.com/coder/websocket"
	"github.com/rs/zerolog/log"
)

const sendBufferSize = 32

// client is one connected browser tab. Everything written to it, acks and
// broadcasts alike, flows through the send channel so ordering matches the
// order mutations were applied.
type client struct {
	id   string
	send chan []byte
}

func newClient(id string) *client {
	return &client{
		id:   id,
		send: make(chan []byte, sendBufferSize),
	}
}

// writePump reads from the send channel and writes to the WebSocket
// connection until the connection's context ends.
func (c *client) writePump(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// enqueue marshals and queues a message, dropping it if the client's buffer
// is full. Delivery is at-most-once; clients resync via get-room.
func (c *client) enqueue(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("conn", c.id).Msg("marshal outbound message")
		return
	}
	select {
	case c.send <- data:
	default:
		log.Warn().Str("conn", c.id).Msg("send buffer full, dropping message")
	}
}
