package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/hasami-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-backend/internal/entity"
	"github.com/rocketscienceinc/hasami-backend/internal/hasami"
	"github.com/rocketscienceinc/hasami-backend/internal/notation"
	"github.com/rocketscienceinc/hasami-backend/internal/repository"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - runs game sessions: one move per session is processed at a time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeMove - plays a move for the active player. Squares are given in algebraic notation.
// Rejected moves return the unchanged game together with the reason.
func (that *GameManager) MakeMove(ctx context.Context, gameID, from, to string) (*entity.Game, []entity.Position, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID)

	fromPos, err := notation.Parse(from)
	if err != nil {
		return nil, nil, fmt.Errorf("bad source square: %w", err)
	}

	toPos, err := notation.Parse(to)
	if err != nil {
		return nil, nil, fmt.Errorf("bad destination square: %w", err)
	}

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			that.forgetLock(gameID)
		}
		return nil, nil, err
	}

	mover := game.Turn

	captured, err := hasami.MakeMove(game, fromPos, toPos)
	if err != nil {
		log.Debug("move rejected", "player", mover, "from", from, "to", to, "reason", err)
		return game, nil, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to update game: %w", err)
	}

	if len(captured) > 0 {
		log.Info("pieces captured", "player", mover, "squares", notation.FormatAll(captured))
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner(), "status", game.Status)
	}

	return game, captured, nil
}

// SquareOccupant - color of the piece on the square, or Empty.
func (that *GameManager) SquareOccupant(ctx context.Context, gameID, square string) (entity.Color, error) {
	pos, err := notation.Parse(square)
	if err != nil {
		return entity.Empty, fmt.Errorf("bad square: %w", err)
	}

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return entity.Empty, err
	}

	return game.Board.At(pos), nil
}

// CapturedPieces - number of pieces of the given color removed so far.
func (that *GameManager) CapturedPieces(ctx context.Context, gameID, color string) (int, error) {
	player := entity.Color(strings.ToUpper(strings.TrimSpace(color)))
	if !player.IsPlayer() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownColor, color)
	}

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return 0, err
	}

	return game.Captured.Count(player), nil
}

func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	unlock := that.lock(gameID)
	err := that.gameRepo.DeleteByID(ctx, gameID)
	unlock()

	that.forgetLock(gameID)

	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

// lock - takes the session's exclusive lock and returns its release function.
func (that *GameManager) lock(gameID string) func() {
	that.locksMutex.Lock()
	sessionLock, ok := that.locks[gameID]
	if !ok {
		sessionLock = &sync.Mutex{}
		that.locks[gameID] = sessionLock
	}
	that.locksMutex.Unlock()

	sessionLock.Lock()

	return sessionLock.Unlock
}

func (that *GameManager) forgetLock(gameID string) {
	that.locksMutex.Lock()
	delete(that.locks, gameID)
	that.locksMutex.Unlock()
}
