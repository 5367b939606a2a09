package mobility

import (
	. "github.com/cricklet/premove/internal/helpers"
)

type PawnChak struct {
	Color Color
}

func (m PawnChak) Reaches(x1, y1, x2, y2 int) bool {
	forward := ahead(m.Color, y1, y2)
	return forward >= 0 && forward <= 1 && diff(x1, x2) <= 1
}

// inChakHalf is the enemy half plus the shared middle rank.
func inChakHalf(color Color, y int) bool {
	if color == White {
		return y >= 4
	}
	return y <= 4
}

type ChakWarrior struct {
	Color Color
}

func (m ChakWarrior) Reaches(x1, y1, x2, y2 int) bool {
	return ToriCrane.Reaches(x1, y1, x2, y2) && inChakHalf(m.Color, y2)
}

type ChakDivineKing struct {
	Color Color
}

func (m ChakDivineKing) Reaches(x1, y1, x2, y2 int) bool {
	return Queen.Reaches(x1, y1, x2, y2) &&
		diff(x1, x2) <= 2 &&
		diff(y1, y2) <= 2 &&
		inChakHalf(m.Color, y2)
}

// KingChennis is fenced to files b-f and its own side of the middle rank.
type KingChennis struct {
	Color Color
}

func (m KingChennis) Reaches(x1, y1, x2, y2 int) bool {
	if !KingNoCastling.Reaches(x1, y1, x2, y2) || x2 < 1 || x2 > 5 {
		return false
	}
	if m.Color == White {
		return y2 <= 3
	}
	return y2 >= 3
}
