// Package notation converts squares between algebraic notation and board positions.
//
// A square is written as a row letter followed by a column digit: "a1" is the top-left corner and
// "i9" the bottom-right one.
package notation

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hasami-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-backend/internal/entity"
)

const (
	firstRow = 'a'
	firstCol = '1'
)

var ErrInvalidNotation = fmt.Errorf("%w: notation must be a letter a-i followed by a digit 1-9", apperror.ErrInvalidCoordinate)

// Parse - converts a square such as "e5" to a board position.
func Parse(square string) (entity.Position, error) {
	square = strings.ToLower(strings.TrimSpace(square))
	if len(square) != 2 {
		return entity.Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, square)
	}

	pos := entity.Position{
		Row: int(square[0]) - firstRow,
		Col: int(square[1]) - firstCol,
	}

	if !pos.InBounds() {
		return entity.Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, square)
	}

	return pos, nil
}

// Format - converts a board position to its square name.
func Format(pos entity.Position) string {
	if !pos.InBounds() {
		return "??"
	}

	return string([]byte{byte(firstRow + pos.Row), byte(firstCol + pos.Col)})
}

// FormatAll - joins several positions, e.g. "b5 c5".
func FormatAll(positions []entity.Position) string {
	squares := make([]string, 0, len(positions))
	for _, pos := range positions {
		squares = append(squares, Format(pos))
	}

	return strings.Join(squares, " ")
}
