package mobility

import (
	. "github.com/cricklet/premove/internal/helpers"
)

// ToriGoose is the promoted swallow.
type ToriGoose struct {
	Color Color
}

func (m ToriGoose) Reaches(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	forward := ahead(m.Color, y1, y2)
	return (xd == 2 && forward == 2) || (xd == 0 && forward == -2)
}

type ToriLeftQuail struct {
	Color Color
}

func (m ToriLeftQuail) Reaches(x1, y1, x2, y2 int) bool {
	forward := ahead(m.Color, y1, y2)
	right := side(m.Color, x1, x2)
	return (x2 == x1 && forward > 0) ||
		(diff(x1, x2) == diff(y1, y2) && right > 0 && forward < 0) ||
		(right == -1 && forward == -1)
}

type ToriRightQuail struct {
	Color Color
}

func (m ToriRightQuail) Reaches(x1, y1, x2, y2 int) bool {
	forward := ahead(m.Color, y1, y2)
	right := side(m.Color, x1, x2)
	return (x2 == x1 && forward > 0) ||
		(diff(x1, x2) == diff(y1, y2) && right < 0 && forward < 0) ||
		(right == 1 && forward == -1)
}

type ToriPheasant struct {
	Color Color
}

func (m ToriPheasant) Reaches(x1, y1, x2, y2 int) bool {
	forward := ahead(m.Color, y1, y2)
	return (x2 == x1 && forward == 2) || (diff(x1, x2) == 1 && forward == -1)
}

// ToriCrane steps like a king except sideways.
var ToriCrane Mobility = Func(func(x1, y1, x2, y2 int) bool {
	return KingNoCastling.Reaches(x1, y1, x2, y2) && y2 != y1
})

// ToriFalcon steps like a king except straight back.
type ToriFalcon struct {
	Color Color
}

func (m ToriFalcon) Reaches(x1, y1, x2, y2 int) bool {
	return KingNoCastling.Reaches(x1, y1, x2, y2) && !(x2 == x1 && ahead(m.Color, y1, y2) == -1)
}

// ToriEagle is the promoted falcon.
type ToriEagle struct {
	Color Color
}

func (m ToriEagle) Reaches(x1, y1, x2, y2 int) bool {
	xd := diff(x1, x2)
	yd := diff(y1, y2)
	forward := ahead(m.Color, y1, y2)
	return KingNoCastling.Reaches(x1, y1, x2, y2) ||
		(xd == yd && (forward > 0 || (forward < 0 && yd <= 2))) ||
		(x2 == x1 && forward < 0)
}
