package entity

import (
	"fmt"

	"github.com/rocketscienceinc/hasami-backend/internal/apperror"
)

const (
	StatusUnfinished Status = "UNFINISHED"
	StatusRedWon     Status = "RED_WON"
	StatusBlackWon   Status = "BLACK_WON"
)

// WinningCaptures - number of captured opponent pieces that ends the game.
const WinningCaptures = 8

type Status string

// CaptureTally - number of pieces of each color removed from the board so far.
type CaptureTally struct {
	Black int `json:"black"`
	Red   int `json:"red"`
}

func (that *CaptureTally) Count(color Color) int {
	switch color {
	case Black:
		return that.Black
	case Red:
		return that.Red
	default:
		return 0
	}
}

func (that *CaptureTally) Add(color Color, n int) {
	switch color {
	case Black:
		that.Black += n
	case Red:
		that.Red += n
	default:
		panic(fmt.Sprintf("capture tally: unknown color %q", color))
	}
}

type Game struct {
	ID       string       `json:"id"`
	Board    Board        `json:"board"`
	Captured CaptureTally `json:"captured"`
	Status   Status       `json:"status"`
	Turn     Color        `json:"player_turn"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Status: StatusUnfinished,
		Turn:   Black,
	}
}

// UpdateGameState - finishes the game once either color has lost enough pieces.
func (that *Game) UpdateGameState() {
	if that.IsFinished() {
		return
	}

	switch {
	case that.Captured.Black >= WinningCaptures:
		that.Status = StatusRedWon
	case that.Captured.Red >= WinningCaptures:
		that.Status = StatusBlackWon
	}
}

// ToggleTurn - passes the move to the other color.
func (that *Game) ToggleTurn() {
	that.Turn = that.Turn.Opponent()
}

// Winner - returns the winning color, or Empty while the game is unfinished.
func (that *Game) Winner() Color {
	switch that.Status {
	case StatusBlackWon:
		return Black
	case StatusRedWon:
		return Red
	default:
		return Empty
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusBlackWon || that.Status == StatusRedWon
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusUnfinished
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
