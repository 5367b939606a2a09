package mobility

import (
	. "github.com/cricklet/premove/internal/helpers"
)

// Pawn steps one rank forward, straight or diagonally since captures are not
// told apart, and may double step straight from either of its first two ranks
// so horde pawns are covered.
type Pawn struct {
	Color Color
}

func (m Pawn) Reaches(x1, y1, x2, y2 int) bool {
	if diff(x1, x2) >= 2 {
		return false
	}
	if m.Color == White {
		return y2 == y1+1 || (y1 <= 1 && y2 == y1+2 && x1 == x2)
	}
	return y2 == y1-1 || (y1 >= 6 && y2 == y1-2 && x1 == x2)
}

type PawnNoDoubleStep struct {
	Color Color
}

func (m PawnNoDoubleStep) Reaches(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) < 2 && ahead(m.Color, y1, y2) == 1
}

// PawnGrand double steps from any of its first three ranks.
type PawnGrand struct {
	Color Color
}

func (m PawnGrand) Reaches(x1, y1, x2, y2 int) bool {
	if diff(x1, x2) >= 2 {
		return false
	}
	if m.Color == White {
		return y2 == y1+1 || (y1 <= 2 && y2 == y1+2 && x1 == x2)
	}
	return y2 == y1-1 || (y1 >= 7 && y2 == y1-2 && x1 == x2)
}

type CastlingRights struct {
	Color     Color
	RookFiles []int
	CanCastle bool
}

func (c CastlingRights) hasRook(file int) bool {
	return Contains(c.RookFiles, file)
}

// onRank reports a sideways move along the given home rank, the only shape a
// castling move can take.
func (c CastlingRights) onRank(rank, y1, y2 int) bool {
	return c.CanCastle && y1 == y2 && y1 == rank
}

func Backrank(color Color) int {
	if color == White {
		return 0
	}
	return 7
}

func ShakoBackrank(color Color) int {
	if color == White {
		return 1
	}
	return 8
}

// King castles from the e-file to the c- or g-file, or onto any of its own
// rooks.
type King struct {
	CastlingRights
}

func (m King) Reaches(x1, y1, x2, y2 int) bool {
	if KingNoCastling.Reaches(x1, y1, x2, y2) {
		return true
	}
	if !m.onRank(Backrank(m.Color), y1, y2) {
		return false
	}
	if x1 == 4 && ((x2 == 2 && m.hasRook(0)) || (x2 == 6 && m.hasRook(7))) {
		return true
	}
	return m.hasRook(x2)
}

// King960 only castles by moving onto its own rook.
type King960 struct {
	CastlingRights
}

func (m King960) Reaches(x1, y1, x2, y2 int) bool {
	return KingNoCastling.Reaches(x1, y1, x2, y2) ||
		(m.onRank(Backrank(m.Color), y1, y2) && m.hasRook(x2))
}

// KingCapablanca castles from the f-file to the c- or i-file.
type KingCapablanca struct {
	CastlingRights
}

func (m KingCapablanca) Reaches(x1, y1, x2, y2 int) bool {
	return KingNoCastling.Reaches(x1, y1, x2, y2) ||
		(m.onRank(Backrank(m.Color), y1, y2) &&
			x1 == 5 &&
			((x2 == 8 && m.hasRook(9)) || (x2 == 2 && m.hasRook(0))))
}

// KingShako stands on the second rank and castles from the f-file to the d-
// or h-file with rooks on the b- and i-files.
type KingShako struct {
	CastlingRights
}

func (m KingShako) Reaches(x1, y1, x2, y2 int) bool {
	return KingNoCastling.Reaches(x1, y1, x2, y2) ||
		(m.onRank(ShakoBackrank(m.Color), y1, y2) &&
			x1 == 5 &&
			((x2 == 7 && m.hasRook(8)) || (x2 == 3 && m.hasRook(1))))
}
