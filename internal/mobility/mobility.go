// Package mobility describes where a piece could move on an otherwise empty
// board. Nothing here looks at occupancy, blocking pieces or check: the
// answers are premove candidates, and legality is decided elsewhere.
package mobility

import (
	. "github.com/cricklet/premove/internal/helpers"
)

// Mobility reports whether a piece standing on (x1, y1) could move to (x2, y2).
// Implementations are pure functions of the four coordinates.
type Mobility interface {
	Reaches(x1, y1, x2, y2 int) bool
}

type Func func(x1, y1, x2, y2 int) bool

func (f Func) Reaches(x1, y1, x2, y2 int) bool {
	return f(x1, y1, x2, y2)
}

// Union reaches a square when any member does.
type Union []Mobility

func (u Union) Reaches(x1, y1, x2, y2 int) bool {
	for _, m := range u {
		if m.Reaches(x1, y1, x2, y2) {
			return true
		}
	}
	return false
}

var None Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return false
})

func diff(a, b int) int {
	return AbsDiff(a, b)
}

// ahead is the signed number of ranks moved toward the opponent.
func ahead(color Color, y1, y2 int) int {
	if color == White {
		return y2 - y1
	}
	return y1 - y2
}

// side is the signed number of files moved toward the mover's right hand.
func side(color Color, x1, x2 int) int {
	if color == White {
		return x2 - x1
	}
	return x1 - x2
}

var Knight Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return (xd == 1 && yd == 2) || (xd == 2 && yd == 1)
})

var Bishop Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) == diff(y1, y2)
})

var Rook Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return x1 == x2 || y1 == y2
})

var Queen Mobility = Union{Bishop, Rook}

var KingNoCastling Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) < 2 && diff(y1, y2) < 2
})

var Wazir Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return (xd == 1 && yd == 0) || (xd == 0 && yd == 1)
})

// Ferz is also the makruk met.
var Ferz Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) == diff(y1, y2) && diff(x1, x2) == 1
})

// Elephant is the shatranj alfil, a two square diagonal jump.
var Elephant Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return xd == yd && xd == 2
})

var Archbishop Mobility = Union{Bishop, Knight}

var Chancellor Mobility = Union{Rook, Knight}

var Amazon Mobility = Union{Bishop, Rook, Knight}

// Centaur is the shogun general.
var Centaur Mobility = Union{KingNoCastling, Knight}

var ShakoElephant Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return diff(x1, x2) == diff(y1, y2) && diff(x1, x2) < 3
})

var JanggiElephant Mobility = Func(func(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	return (xd == 2 && yd == 3) || (xd == 3 && yd == 2)
})
