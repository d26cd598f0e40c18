package hasami

import (
	"fmt"

	"github.com/rocketscienceinc/hasami-backend/internal/entity"
)

// MakeMove - plays the active player's move on the game: validates it, applies captures,
// updates the game status and passes the turn.
func MakeMove(game *entity.Game, from, to entity.Position) ([]entity.Position, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if err := ValidateMove(&game.Board, game.Turn, from, to); err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	captured, _ := ApplyMove(&game.Board, &game.Captured, game.Turn, from, to)

	game.UpdateGameState()
	game.ToggleTurn()

	return captured, nil
}
