package mobility

import (
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/palace"
)

// XiangqiPawn may also step sideways once it has crossed the river.
type XiangqiPawn struct {
	Color Color
}

func (m XiangqiPawn) Reaches(x1, y1, x2, y2 int) bool {
	crossed := y1 < 5
	if m.Color == White {
		crossed = y1 > 4
	}
	return (x2 == x1 && ahead(m.Color, y1, y2) == 1) ||
		(y2 == y1 && diff(x1, x2) < 2 && crossed)
}

// MinixiangqiPawn steps sideways from the start; janggi pawns do the same.
type MinixiangqiPawn struct {
	Color Color
}

func (m MinixiangqiPawn) Reaches(x1, y1, x2, y2 int) bool {
	return (x2 == x1 && ahead(m.Color, y1, y2) == 1) || (y2 == y1 && diff(x1, x2) < 2)
}

// XiangqiElephant never crosses the river.
type XiangqiElephant struct {
	Color Color
}

func (m XiangqiElephant) Reaches(x1, y1, x2, y2 int) bool {
	if !Elephant.Reaches(x1, y1, x2, y2) {
		return false
	}
	if m.Color == White {
		return y2 < 5
	}
	return y2 > 4
}

type XiangqiAdvisor struct {
	Palace palace.Palace
}

func (m XiangqiAdvisor) Reaches(x1, y1, x2, y2 int) bool {
	return Ferz.Reaches(x1, y1, x2, y2) && m.Palace.Contains(x2, y2)
}

type XiangqiKing struct {
	Palace palace.Palace
}

func (m XiangqiKing) Reaches(x1, y1, x2, y2 int) bool {
	return Wazir.Reaches(x1, y1, x2, y2) && m.Palace.Contains(x2, y2)
}

// JanggiPawn gains a forward diagonal step along the palace lines of the
// enemy palace.
type JanggiPawn struct {
	Color       Color
	EnemyPalace palace.Palace
}

func (m JanggiPawn) Reaches(x1, y1, x2, y2 int) bool {
	if (MinixiangqiPawn{m.Color}).Reaches(x1, y1, x2, y2) {
		return true
	}
	white := m.Color == White
	switch m.EnemyPalace.Index(x1, y1) {
	case palace.TopLeft:
		return x2 == x1+1 && !white && y2 == y1-1
	case palace.TopRight:
		return x2 == x1-1 && !white && y2 == y1-1
	case palace.Center:
		return diff(x1, x2) == 1 && ahead(m.Color, y1, y2) == 1
	case palace.BottomLeft:
		return x2 == x1+1 && white && y2 == y1+1
	case palace.BottomRight:
		return x2 == x1-1 && white && y2 == y1+1
	}
	return false
}

// JanggiRook slides along the palace diagonals of either palace.
type JanggiRook struct {
	Palaces [2]palace.Palace
}

func (m JanggiRook) Reaches(x1, y1, x2, y2 int) bool {
	if Rook.Reaches(x1, y1, x2, y2) {
		return true
	}
	index := m.Palaces[White].Index(x1, y1)
	if index == -1 {
		index = m.Palaces[Black].Index(x1, y1)
	}
	diagonal := diff(x1, x2) == diff(y1, y2)
	switch index {
	case palace.TopLeft:
		return diagonal && x2 > x1 && x2 <= x1+2 && y2 < y1 && y2 >= y1-2
	case palace.TopRight:
		return diagonal && x2 < x1 && x2 >= x1-2 && y2 < y1 && y2 >= y1-2
	case palace.Center:
		return Ferz.Reaches(x1, y1, x2, y2)
	case palace.BottomLeft:
		return diagonal && x2 > x1 && x2 <= x1+2 && y2 > y1 && y2 <= y1+2
	case palace.BottomRight:
		return diagonal && x2 < x1 && x2 >= x1-2 && y2 > y1 && y2 <= y1+2
	}
	return false
}

// JanggiKing steps along palace lines and never leaves its palace. From a
// corner the only diagonal leads to the center.
type JanggiKing struct {
	Palace palace.Palace
}

func (m JanggiKing) Reaches(x1, y1, x2, y2 int) bool {
	if !m.Palace.Contains(x2, y2) {
		return false
	}
	if Wazir.Reaches(x1, y1, x2, y2) {
		return true
	}
	switch m.Palace.Index(x1, y1) {
	case palace.TopLeft:
		return x2 == x1+1 && y2 == y1-1
	case palace.TopRight:
		return x2 == x1-1 && y2 == y1-1
	case palace.Center:
		return Ferz.Reaches(x1, y1, x2, y2)
	case palace.BottomLeft:
		return x2 == x1+1 && y2 == y1+1
	case palace.BottomRight:
		return x2 == x1-1 && y2 == y1+1
	}
	return false
}
