package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hasami-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-backend/internal/entity"
	"github.com/rocketscienceinc/hasami-backend/internal/notation"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errWrongArguments = errors.New("wrong number of arguments")
)

const helpText = `commands:
  new                 start a new game
  move <from> <to>    move a piece, e.g. move i3 e3
  status              game status, active player and captures
  occupant <square>   color on a square
  captured <color>    captured pieces of black or red
  board               print the board
  quit                leave
`

func (that *Server) handleNewGame(ctx context.Context, _ []string) (string, error) {
	log := that.logger.With("method", "handleNewGame")

	if that.gameID != "" {
		if err := that.uGame.EndGame(ctx, that.gameID); err != nil {
			log.Warn("failed to end previous game", "gameID", that.gameID, "error", err)
		}
		that.gameID = ""
	}

	game, err := that.uGame.NewGame(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create a new game: %w", err)
	}

	that.gameID = game.ID

	return fmt.Sprintf("new game %s, %s to move\n", game.ID, game.Turn), nil
}

func (that *Server) handleMove(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: move <from> <to>", errWrongArguments)
	}

	gameID, err := that.activeGame()
	if err != nil {
		return "", err
	}

	game, captured, err := that.uGame.MakeMove(ctx, gameID, args[0], args[1])
	if err != nil {
		return "", err
	}

	var response strings.Builder
	if len(captured) > 0 {
		fmt.Fprintf(&response, "captured %s\n", notation.FormatAll(captured))
	}

	if game.IsFinished() {
		fmt.Fprintf(&response, "%s wins\n", game.Winner())
		return response.String(), nil
	}

	fmt.Fprintf(&response, "%s to move\n", game.Turn)

	return response.String(), nil
}

func (that *Server) handleStatus(ctx context.Context, _ []string) (string, error) {
	game, err := that.currentGame(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("status %s, turn %s, captured black=%d red=%d\n",
		game.Status, game.Turn, game.Captured.Black, game.Captured.Red), nil
}

func (that *Server) handleOccupant(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: occupant <square>", errWrongArguments)
	}

	gameID, err := that.activeGame()
	if err != nil {
		return "", err
	}

	color, err := that.uGame.SquareOccupant(ctx, gameID, args[0])
	if err != nil {
		return "", err
	}

	if color == entity.Empty {
		return "NONE\n", nil
	}

	return string(color) + "\n", nil
}

func (that *Server) handleCaptured(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: captured <black|red>", errWrongArguments)
	}

	gameID, err := that.activeGame()
	if err != nil {
		return "", err
	}

	count, err := that.uGame.CapturedPieces(ctx, gameID, args[0])
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d\n", count), nil
}

func (that *Server) handleBoard(ctx context.Context, _ []string) (string, error) {
	game, err := that.currentGame(ctx)
	if err != nil {
		return "", err
	}

	return formatBoard(&game.Board), nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) (string, error) {
	return helpText, nil
}

func (that *Server) handleQuit(ctx context.Context, _ []string) (string, error) {
	if that.gameID != "" {
		if err := that.uGame.EndGame(ctx, that.gameID); err != nil {
			that.logger.Warn("failed to end game", "gameID", that.gameID, "error", err)
		}
		that.gameID = ""
	}

	return "bye\n", errQuit
}

func (that *Server) activeGame() (string, error) {
	if that.gameID == "" {
		return "", fmt.Errorf("%w, type new", apperror.ErrNoActiveGame)
	}

	return that.gameID, nil
}

func (that *Server) currentGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := that.activeGame()
	if err != nil {
		return nil, err
	}

	return that.uGame.GetGame(ctx, gameID)
}

// formatBoard - text dump of the occupants, rows labelled a-i and columns 1-9.
func formatBoard(board *entity.Board) string {
	var out strings.Builder

	out.WriteString(" ")
	for col := 0; col < entity.BoardSize; col++ {
		fmt.Fprintf(&out, " %d", col+1)
	}
	out.WriteString("\n")

	for row := 0; row < entity.BoardSize; row++ {
		out.WriteByte(byte('a' + row))
		for col := 0; col < entity.BoardSize; col++ {
			out.WriteByte(' ')
			out.WriteByte(cellSymbol(board.At(entity.Position{Row: row, Col: col})))
		}
		out.WriteString("\n")
	}

	return out.String()
}

func cellSymbol(color entity.Color) byte {
	switch color {
	case entity.Black:
		return 'B'
	case entity.Red:
		return 'R'
	default:
		return '.'
	}
}
