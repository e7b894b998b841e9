// Package events defines the JSON wire messages exchanged with clients.
// Every message carries a short "t" field naming the command or event.
package events

// Client -> server commands.
const (
	CmdCreateRoom   = "create-room"
	CmdJoinRoom     = "join-room"
	CmdGetRoom      = "get-room"
	CmdStartRace    = "start-race"
	CmdRaceProgress = "race-progress"
	CmdLeaveRoom    = "leave-room"
)

// Server -> client events.
const (
	TypeAck             = "ack"
	EventPlayerJoined   = "player-joined"
	EventPlayerLeft     = "player-left"
	EventRaceCountdown  = "race-countdown"
	EventRaceStart      = "race-start"
	EventPlayerProgress = "player-progress"
	EventRaceFinished   = "race-finished"
)

// Settings are captured at room creation and immutable afterwards.
type Settings struct {
	WordCount       int    `json:"wordCount"`
	IncludeCapitals bool   `json:"includeCapitals"`
	UseAI           bool   `json:"useAI"`
	Mode            string `json:"mode"` // "multiplayer" or "solo"
}

// Player is the client-visible racer state within a room.
type Player struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CarID      string  `json:"carId"`
	Progress   float64 `json:"progress"`
	WPM        float64 `json:"wpm"`
	Finished   bool    `json:"finished"`
	FinishTime int64   `json:"finishTime,omitempty"` // ms elapsed since race start
}

// RoomView is the full room serialization sent to members. Text stays empty
// until the race leaves the waiting state.
type RoomView struct {
	ID        string   `json:"id"`
	HostID    string   `json:"hostId"`
	Players   []Player `json:"players"`
	Settings  Settings `json:"settings"`
	State     string   `json:"state"`
	Text      string   `json:"text"`
	StartTime int64    `json:"startTime,omitempty"` // unix ms
}

// RoomPreview is the reduced projection returned by get-room. It never
// includes the race text.
type RoomPreview struct {
	ID          string   `json:"id"`
	PlayerCount int      `json:"playerCount"`
	State       string   `json:"state"`
	Settings    Settings `json:"settings"`
}

// Command is the inbound message envelope. Fields not used by a given
// command are simply left zero by the client.
type Command struct {
	T          string    `json:"t"`
	Seq        int64     `json:"seq,omitempty"` // nonzero if the client wants an ack
	RoomID     string    `json:"roomId,omitempty"`
	PlayerName string    `json:"playerName,omitempty"`
	CarID      string    `json:"carId,omitempty"`
	Settings   *Settings `json:"settings,omitempty"`
	Text       string    `json:"text,omitempty"`
	Progress   float64   `json:"progress,omitempty"`
	WPM        float64   `json:"wpm,omitempty"`
}

// Ack answers a command that carried a seq.
type Ack struct {
	T       string `json:"t"`
	Seq     int64  `json:"seq"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
	Room    any    `json:"room,omitempty"` // RoomView or RoomPreview
}

type PlayerJoined struct {
	T      string   `json:"t"`
	Player Player   `json:"player"`
	Room   RoomView `json:"room"`
}

type PlayerLeft struct {
	T         string   `json:"t"`
	PlayerID  string   `json:"playerId"`
	NewHostID string   `json:"newHostId"`
	Room      RoomView `json:"room"`
}

type RaceCountdown struct {
	T    string   `json:"t"`
	Room RoomView `json:"room"`
}

type RaceStart struct {
	T         string   `json:"t"`
	Text      string   `json:"text"`
	StartTime int64    `json:"startTime"`
	Room      RoomView `json:"room"`
}

type PlayerProgress struct {
	T          string  `json:"t"`
	PlayerID   string  `json:"playerId"`
	Progress   float64 `json:"progress"`
	WPM        float64 `json:"wpm"`
	Finished   bool    `json:"finished"`
	FinishTime int64   `json:"finishTime,omitempty"`
}

type RaceFinished struct {
	T    string   `json:"t"`
	Room RoomView `json:"room"`
}
