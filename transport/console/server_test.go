package console

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hasami-backend/internal/repository"
	"github.com/rocketscienceinc/hasami-backend/internal/usecase"
)

var errBrokenPipe = errors.New("broken pipe")

func newTestServer() *Server {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository())

	return New(logger, manager)
}

func run(t *testing.T, server *Server, commands ...string) string {
	t.Helper()

	var out strings.Builder
	err := server.Start(context.Background(), strings.NewReader(strings.Join(commands, "\n")+"\n"), &out)
	require.NoError(t, err)

	return out.String()
}

func TestServer_Start(t *testing.T) {
	t.Run("Commands before a game is started", func(t *testing.T) {
		// When: a move is typed without a game
		out := run(t, newTestServer(), "move i1 e1", "bogus")

		// Then: the user is told to start one
		assert.Contains(t, out, "error: no active game, type new")
		assert.Contains(t, out, `error: unknown command: "bogus"`)
	})

	t.Run("Plays an opening move", func(t *testing.T) {
		// When: a game is started and black slides i1 to e1
		out := run(t, newTestServer(),
			"new",
			"move a1 e1",
			"move i1 e1",
			"status",
			"occupant e1",
			"occupant i1",
			"captured red",
			"board",
		)

		// Then: every query reflects the move
		assert.Contains(t, out, "BLACK to move")
		assert.Contains(t, out, "error: failed to make move: invalid move: illegal move")
		assert.Contains(t, out, "RED to move")
		assert.Contains(t, out, "status UNFINISHED, turn RED, captured black=0 red=0")
		assert.Contains(t, out, "BLACK\n")
		assert.Contains(t, out, "NONE\n")
		assert.Contains(t, out, "  1 2 3 4 5 6 7 8 9\n")
		assert.Contains(t, out, "a R R R R R R R R R\n")
		assert.Contains(t, out, "e B . . . . . . . .\n")
		assert.Contains(t, out, "i . B B B B B B B B\n")
	})

	t.Run("Reports a capture", func(t *testing.T) {
		// When: red sandwiches the black piece on b5
		out := run(t, newTestServer(),
			"new",
			"move i5 b5",
			"move a4 b4",
			"move i1 e1",
			"move a6 b6",
			"captured black",
			"quit",
			"status",
		)

		// Then: the capture is announced and counted, and input after quit is ignored
		assert.Contains(t, out, "captured b5\nBLACK to move\n")
		assert.Contains(t, out, "> 1\n")
		assert.True(t, strings.HasSuffix(out, "bye\n"))
		assert.NotContains(t, out, "status UNFINISHED")
	})

	t.Run("Bad arguments are reported", func(t *testing.T) {
		out := run(t, newTestServer(), "new", "move i1", "occupant z9", "captured green")

		assert.Contains(t, out, "error: wrong number of arguments: move <from> <to>")
		assert.Contains(t, out, "error: bad square: invalid coordinate")
		assert.Contains(t, out, "error: unknown color")
	})

	t.Run("Help lists the commands", func(t *testing.T) {
		out := run(t, newTestServer(), "help")

		assert.Contains(t, out, "move <from> <to>")
	})

	t.Run("Stops on a canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out strings.Builder
		err := newTestServer().Start(ctx, strings.NewReader("new\n"), &out)

		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("Stops when canceled while waiting for input", func(t *testing.T) {
		// Given: a session reading from a terminal that stays open
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- newTestServer().Start(ctx, reader, io.Discard)
		}()

		_, err := io.WriteString(writer, "help\n")
		require.NoError(t, err)

		// When: the context is canceled while the prompt waits
		cancel()

		// Then: Start returns without another line being typed
		select {
		case err = <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("console did not stop after cancel")
		}
	})

	t.Run("Returns write errors", func(t *testing.T) {
		err := newTestServer().Start(context.Background(), strings.NewReader("help\n"), failingWriter{})

		require.ErrorIs(t, err, errBrokenPipe)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}
