package mobility

import (
	. "github.com/cricklet/premove/internal/helpers"
)

type ShogiLance struct {
	Color Color
}

func (m ShogiLance) Reaches(x1, y1, x2, y2 int) bool {
	return x2 == x1 && ahead(m.Color, y1, y2) > 0
}

// ShogiSilver is also the makruk khon and the sittuyin elephant.
type ShogiSilver struct {
	Color Color
}

func (m ShogiSilver) Reaches(x1, y1, x2, y2 int) bool {
	return Ferz.Reaches(x1, y1, x2, y2) || (x1 == x2 && ahead(m.Color, y1, y2) == 1)
}

// ShogiGold is also every promoted minor shogi piece.
type ShogiGold struct {
	Color Color
}

func (m ShogiGold) Reaches(x1, y1, x2, y2 int) bool {
	return Wazir.Reaches(x1, y1, x2, y2) || (diff(x1, x2) < 2 && ahead(m.Color, y1, y2) == 1)
}

type ShogiPawn struct {
	Color Color
}

func (m ShogiPawn) Reaches(x1, y1, x2, y2 int) bool {
	return x2 == x1 && ahead(m.Color, y1, y2) == 1
}

type ShogiKnight struct {
	Color Color
}

func (m ShogiKnight) Reaches(x1, y1, x2, y2 int) bool {
	return (x2 == x1-1 || x2 == x1+1) && ahead(m.Color, y1, y2) == 2
}

// ShogiDragon is the promoted rook.
var ShogiDragon Mobility = Union{Rook, Ferz}

// ShogiHorse is the promoted bishop.
var ShogiHorse Mobility = Union{Bishop, Wazir}
