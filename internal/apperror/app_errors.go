package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrUnknownColor      = errors.New("unknown color")
	ErrNoActiveGame      = errors.New("no active game")
)
