package hasami

import (
	"fmt"

	"github.com/rocketscienceinc/hasami-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-backend/internal/entity"
)

var (
	ErrInvalidPosition = fmt.Errorf("%w: position is off the board", apperror.ErrInvalidCoordinate)

	ErrNotYourPiece = fmt.Errorf("%w: square does not hold a piece of the active player", apperror.ErrIllegalMove)
	ErrNullMove     = fmt.Errorf("%w: piece must leave its square", apperror.ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrIllegalMove)
	ErrNotAligned   = fmt.Errorf("%w: move must follow a row or a column", apperror.ErrIllegalMove)
	ErrPathBlocked  = fmt.Errorf("%w: path is blocked", apperror.ErrIllegalMove)
)

// IsLegalMove - reports whether player may move the piece at from to to. The game status is not
// consulted; finished games are rejected by MakeMove.
func IsLegalMove(board *entity.Board, player entity.Color, from, to entity.Position) bool {
	return ValidateMove(board, player, from, to) == nil
}

// ValidateMove - checks the move and returns the first rule it breaks.
func ValidateMove(board *entity.Board, player entity.Color, from, to entity.Position) error {
	if !from.InBounds() || !to.InBounds() {
		return ErrInvalidPosition
	}

	if !player.IsPlayer() || board.At(from) != player {
		return ErrNotYourPiece
	}

	if from == to {
		return ErrNullMove
	}

	if board.At(to) != entity.Empty {
		return ErrCellOccupied
	}

	if from.Row != to.Row && from.Col != to.Col {
		return ErrNotAligned
	}

	// a piece slides any distance, like a rook
	step := stepTowards(from, to)
	for pos := from.Add(step); pos != to; pos = pos.Add(step) {
		if board.At(pos) != entity.Empty {
			return ErrPathBlocked
		}
	}

	return nil
}

// stepTowards - unit step from one square to another on the same row or column.
func stepTowards(from, to entity.Position) entity.Position {
	return entity.Position{Row: sign(to.Row - from.Row), Col: sign(to.Col - from.Col)}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
