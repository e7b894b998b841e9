package rooms

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRaceInProgress = errors.New("race already in progress")
	ErrRoomFull       = errors.New("room is full")
	ErrNotHost        = errors.New("only the host can start the race")
)
