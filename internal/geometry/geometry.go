package geometry

import (
	"fmt"

	. "github.com/cricklet/premove/internal/helpers"
)

type Geometry uint

const (
	Dim8x8 Geometry = iota
	Dim9x9
	Dim10x8
	Dim9x10
	Dim10x10
	Dim5x5
	Dim7x7
	Dim3x4
	Dim5x6
	Dim12x12

	NumGeometries = int(iota)
)

type Dimensions struct {
	Width  int
	Height int
}

var _dimensions = [NumGeometries]Dimensions{
	Dim8x8:   {8, 8},
	Dim9x9:   {9, 9},
	Dim10x8:  {10, 8},
	Dim9x10:  {9, 10},
	Dim10x10: {10, 10},
	Dim5x5:   {5, 5},
	Dim7x7:   {7, 7},
	Dim3x4:   {3, 4},
	Dim5x6:   {5, 6},
	Dim12x12: {12, 12},
}

var AllGeometries = func() []Geometry {
	result := make([]Geometry, NumGeometries)
	for i := range result {
		result[i] = Geometry(i)
	}
	return result
}()

func (g Geometry) IsValid() bool {
	return int(g) < NumGeometries
}

func (g Geometry) Dimensions() Dimensions {
	return _dimensions[g]
}

func (g Geometry) Width() int {
	return _dimensions[g].Width
}

func (g Geometry) Height() int {
	return _dimensions[g].Height
}

func (g Geometry) String() string {
	if !g.IsValid() {
		return "invalid"
	}
	d := g.Dimensions()
	return fmt.Sprintf("%vx%v", d.Width, d.Height)
}

func GeometryFromString(s string) (Geometry, Error) {
	for _, g := range AllGeometries {
		if g.String() == s {
			return g, NilError
		}
	}
	return 0, Errorf("unknown geometry %v", s)
}

func (g Geometry) Contains(p Pos) bool {
	d := g.Dimensions()
	return p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.Height
}

var _allPos = func() [NumGeometries][]Pos {
	result := [NumGeometries][]Pos{}
	for _, g := range AllGeometries {
		d := g.Dimensions()
		positions := make([]Pos, 0, d.Width*d.Height)
		for x := 0; x < d.Width; x++ {
			for y := 0; y < d.Height; y++ {
				positions = append(positions, Pos{X: x, Y: y})
			}
		}
		result[g] = positions
	}
	return result
}()

// AllPos lists every square file by file, each file bottom rank first.
// Callers must not modify the returned slice.
func (g Geometry) AllPos() []Pos {
	return _allPos[g]
}

func (g Geometry) AllKeys() []Key {
	return MapSlice(g.AllPos(), KeyFromPos)
}
