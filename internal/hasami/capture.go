package hasami

import "github.com/rocketscienceinc/hasami-backend/internal/entity"

var directions = [4]entity.Position{
	{Row: -1, Col: 0}, // up
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
	{Row: 0, Col: 1},  // right
}

// ApplyMove - moves the piece and removes everything the move captures. Illegal moves leave the
// board and the tally untouched and report false.
func ApplyMove(board *entity.Board, tally *entity.CaptureTally, player entity.Color, from, to entity.Position) ([]entity.Position, bool) {
	if !IsLegalMove(board, player, from, to) {
		return nil, false
	}

	board.Set(to, board.At(from))
	board.Set(from, entity.Empty)

	return CaptureAround(board, tally, player, to), true
}

// CaptureAround - removes the opponent pieces captured by player's piece standing at at and
// returns their positions. Corners go first: a corner piece falls to a single neighbor.
func CaptureAround(board *entity.Board, tally *entity.CaptureTally, player entity.Color, at entity.Position) []entity.Position {
	var captured []entity.Position

	if corner, ok := cornerCapture(board, player, at); ok {
		captured = append(captured, corner)
	}

	for _, step := range directions {
		captured = append(captured, scanRun(board, player, at, step)...)
	}

	opponent := player.Opponent()
	for _, pos := range captured {
		board.Set(pos, entity.Empty)
	}
	tally.Add(opponent, len(captured))

	return captured
}

// cornerCapture - finds an opponent piece on a corner next to at.
func cornerCapture(board *entity.Board, player entity.Color, at entity.Position) (entity.Position, bool) {
	opponent := player.Opponent()

	for _, step := range directions {
		next := at.Add(step)
		if next.InBounds() && next.IsCorner() && board.At(next) == opponent {
			return next, true
		}
	}

	return entity.Position{}, false
}

// scanRun - walks from at along step over opponent pieces and returns the run only when a piece
// of player closes it. Reaching an empty cell or the edge returns nothing.
func scanRun(board *entity.Board, player entity.Color, at, step entity.Position) []entity.Position {
	opponent := player.Opponent()

	var run []entity.Position
	for pos := at.Add(step); pos.InBounds(); pos = pos.Add(step) {
		switch board.At(pos) {
		case opponent:
			run = append(run, pos)
		case player:
			return run
		default:
			return nil
		}
	}

	return nil
}
