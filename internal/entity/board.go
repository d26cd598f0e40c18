package entity

import "fmt"

const BoardSize = 9

const (
	Empty Color = ""
	Black Color = "BLACK"
	Red   Color = "RED"
)

// Color - owner of a piece. Empty marks a vacant cell.
type Color string

func (that Color) Opponent() Color {
	switch that {
	case Black:
		return Red
	case Red:
		return Black
	default:
		panic(fmt.Sprintf("color %q has no opponent", string(that)))
	}
}

func (that Color) IsPlayer() bool {
	return that == Black || that == Red
}

// Position - a cell address, rows counted from the top and columns from the left.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Corners - the four cells with only two neighbors on the board.
var Corners = [4]Position{
	{Row: 0, Col: 0},
	{Row: 0, Col: BoardSize - 1},
	{Row: BoardSize - 1, Col: 0},
	{Row: BoardSize - 1, Col: BoardSize - 1},
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) Add(step Position) Position {
	return Position{Row: that.Row + step.Row, Col: that.Col + step.Col}
}

func (that Position) IsCorner() bool {
	for _, corner := range Corners {
		if that == corner {
			return true
		}
	}
	return false
}

type Board [BoardSize][BoardSize]Color

// NewBoard - returns the starting position: red on the top row, black on the bottom row.
func NewBoard() Board {
	var board Board
	for col := 0; col < BoardSize; col++ {
		board[0][col] = Red
		board[BoardSize-1][col] = Black
	}
	return board
}

func (that *Board) At(pos Position) Color {
	return that[pos.Row][pos.Col]
}

func (that *Board) Set(pos Position, color Color) {
	that[pos.Row][pos.Col] = color
}
