package entity

import (
	"testing"

	"github.com/rocketscienceinc/hasami-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123")

	// Then: red fills the top row, black the bottom row, and black moves first
	for col := 0; col < BoardSize; col++ {
		assert.Equal(t, Red, game.Board.At(Position{Row: 0, Col: col}))
		assert.Equal(t, Black, game.Board.At(Position{Row: BoardSize - 1, Col: col}))
	}
	for row := 1; row < BoardSize-1; row++ {
		for col := 0; col < BoardSize; col++ {
			assert.Equal(t, Empty, game.Board.At(Position{Row: row, Col: col}))
		}
	}

	assert.Equal(t, "123", game.ID)
	assert.Equal(t, Black, game.Turn)
	assert.Equal(t, StatusUnfinished, game.Status)
	assert.Equal(t, CaptureTally{}, game.Captured)
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Red wins when eight black pieces are captured", func(t *testing.T) {
		// Given: a game where black lost eight pieces
		game := NewGame("123")
		game.Captured.Black = 8

		// When: the state is updated
		game.UpdateGameState()

		// Then: red is the winner
		assert.Equal(t, StatusRedWon, game.Status)
		assert.Equal(t, Red, game.Winner())
		assert.True(t, game.IsFinished())
	})

	t.Run("Black wins when eight red pieces are captured", func(t *testing.T) {
		// Given: a game where red lost eight pieces
		game := NewGame("123")
		game.Captured.Red = 8

		// When: the state is updated
		game.UpdateGameState()

		// Then: black is the winner
		assert.Equal(t, StatusBlackWon, game.Status)
		assert.Equal(t, Black, game.Winner())
	})

	t.Run("Game continues at seven captures", func(t *testing.T) {
		// Given: both colors lost seven pieces
		game := NewGame("123")
		game.Captured = CaptureTally{Black: 7, Red: 7}

		// When: the state is updated
		game.UpdateGameState()

		// Then: the game is still unfinished
		assert.Equal(t, StatusUnfinished, game.Status)
		assert.Equal(t, Empty, game.Winner())
	})

	t.Run("Finished game keeps its winner", func(t *testing.T) {
		// Given: a game red has won
		game := NewGame("123")
		game.Status = StatusRedWon
		game.Captured.Red = 8

		// When: the state is updated again
		game.UpdateGameState()

		// Then: the result does not change
		assert.Equal(t, StatusRedWon, game.Status)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is unfinished", func(t *testing.T) {
		game := &Game{Status: StatusUnfinished}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is won", func(t *testing.T) {
		game := &Game{Status: StatusBlackWon}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.ErrorIs(t, err, apperror.ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_ToggleTurn(t *testing.T) {
	game := NewGame("123")

	game.ToggleTurn()
	assert.Equal(t, Red, game.Turn)

	game.ToggleTurn()
	assert.Equal(t, Black, game.Turn)
}

func TestCaptureTally(t *testing.T) {
	tally := CaptureTally{}

	tally.Add(Red, 2)
	tally.Add(Black, 1)

	assert.Equal(t, 2, tally.Count(Red))
	assert.Equal(t, 1, tally.Count(Black))
	assert.Equal(t, 0, tally.Count(Empty))
	assert.Panics(t, func() { tally.Add(Empty, 1) })
}

func TestPosition(t *testing.T) {
	t.Run("Corners", func(t *testing.T) {
		assert.True(t, Position{Row: 0, Col: 8}.IsCorner())
		assert.True(t, Position{Row: 8, Col: 0}.IsCorner())
		assert.False(t, Position{Row: 0, Col: 4}.IsCorner())
	})

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, Position{Row: 3, Col: 5}, Position{Row: 4, Col: 4}.Add(Position{Row: -1, Col: 1}))
	})

	t.Run("Bounds", func(t *testing.T) {
		assert.True(t, Position{Row: 8, Col: 8}.InBounds())
		assert.False(t, Position{Row: 9, Col: 0}.InBounds())
		assert.False(t, Position{Row: 0, Col: -1}.InBounds())
	})
}

func TestColor_Opponent(t *testing.T) {
	assert.Equal(t, Red, Black.Opponent())
	assert.Equal(t, Black, Red.Opponent())
	assert.Panics(t, func() { Empty.Opponent() })
}
