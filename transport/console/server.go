package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/hasami-backend/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID, from, to string) (*entity.Game, []entity.Position, error)
	SquareOccupant(ctx context.Context, gameID, square string) (entity.Color, error)
	CapturedPieces(ctx context.Context, gameID, color string) (int, error)
	EndGame(ctx context.Context, gameID string) error
}

type handler func(ctx context.Context, args []string) (string, error)

// Server - hot-seat front end: both players type their moves into the same terminal.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	gameID   string
	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
	}

	server.handlers = map[string]handler{
		"new":      server.handleNewGame,
		"move":     server.handleMove,
		"status":   server.handleStatus,
		"occupant": server.handleOccupant,
		"captured": server.handleCaptured,
		"board":    server.handleBoard,
		"help":     server.handleHelp,
		"quit":     server.handleQuit,
		"exit":     server.handleQuit,
	}

	return server
}

// Start - reads commands line by line until the input ends, quit is typed or ctx is canceled.
// A canceled ctx stops the session even while it waits for input.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, in)

	for {
		if err := ctx.Err(); err != nil {
			log.Info("console stopped", "reason", err)
			return nil
		}

		if _, err := io.WriteString(out, "> "); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case next, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}
			line = next
		}

		response, err := that.handleLine(ctx, line)
		if errors.Is(err, errQuit) {
			_, err = io.WriteString(out, response)
			if err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
			return nil
		}

		if err != nil {
			log.Debug("command failed", "command", line, "error", err)
			response = "error: " + err.Error() + "\n"
		}

		if _, err = io.WriteString(out, response); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// readLines - scans in on its own goroutine. The error channel receives exactly one value
// before lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Server) handleLine(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	handle, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		return "", fmt.Errorf("%w: %q, type help", errUnknownCommand, fields[0])
	}

	return handle(ctx, fields[1:])
}
