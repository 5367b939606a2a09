// Package palace holds the 3x3 zones xiangqi and janggi generals are confined to.
package palace

import (
	"errors"

	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
)

var ErrNoPalace = errors.New("no palace for geometry")

// Palace lists its squares from the rank furthest from the colour's edge down
// to the edge rank, left to right, so 0, 2, 6 and 8 are corners and 4 is the
// center.
type Palace [9]Pos

const (
	TopLeft     = 0
	TopRight    = 2
	Center      = 4
	BottomLeft  = 6
	BottomRight = 8
)

func build(g geometry.Geometry, color Color) Palace {
	d := g.Dimensions()
	middleFile := d.Width / 2
	startingRank := 0
	if color == Black {
		startingRank = d.Height - 3
	}

	result := Palace{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[row*3+col] = Pos{X: middleFile - 1 + col, Y: startingRank + 2 - row}
		}
	}
	return result
}

var _palaces = func() map[geometry.Geometry][2]Palace {
	result := map[geometry.Geometry][2]Palace{}
	for _, g := range []geometry.Geometry{geometry.Dim9x10, geometry.Dim7x7, geometry.Dim12x12} {
		result[g] = [2]Palace{build(g, White), build(g, Black)}
	}
	return result
}()

func For(g geometry.Geometry, color Color) (Palace, Error) {
	palaces, ok := _palaces[g]
	if !ok {
		return Palace{}, Errorf("%v: %w", g, ErrNoPalace)
	}
	if color != White && color != Black {
		return Palace{}, Errorf("%v %v: %w", g, color, ErrNoPalace)
	}
	return palaces[color], NilError
}

func Must(g geometry.Geometry, color Color) Palace {
	p, err := For(g, color)
	if !IsNil(err) {
		panic(err)
	}
	return p
}

func Geometries() []geometry.Geometry {
	return FilterSlice(geometry.AllGeometries, func(g geometry.Geometry) bool {
		_, ok := _palaces[g]
		return ok
	})
}

// Index is the position of (x, y) within the palace, or -1.
func (p Palace) Index(x, y int) int {
	for i, pos := range p {
		if pos.X == x && pos.Y == y {
			return i
		}
	}
	return -1
}

func (p Palace) Contains(x, y int) bool {
	return p.Index(x, y) != -1
}

func IsCorner(index int) bool {
	return index == TopLeft || index == TopRight || index == BottomLeft || index == BottomRight
}
