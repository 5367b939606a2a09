package mobility

import (
	"testing"

	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/palace"
	"github.com/stretchr/testify/assert"
)

func TestXiangqiPawn(t *testing.T) {
	assert.ElementsMatch(t, []Pos{{X: 4, Y: 4}}, destinations(XiangqiPawn{White}, geometry.Dim9x10, Pos{X: 4, Y: 3}))
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 6}, {X: 3, Y: 5}, {X: 5, Y: 5}},
		destinations(XiangqiPawn{White}, geometry.Dim9x10, Pos{X: 4, Y: 5}))
	assert.ElementsMatch(t, []Pos{{X: 4, Y: 5}}, destinations(XiangqiPawn{Black}, geometry.Dim9x10, Pos{X: 4, Y: 6}))
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 3}, {X: 3, Y: 4}, {X: 5, Y: 4}},
		destinations(XiangqiPawn{Black}, geometry.Dim9x10, Pos{X: 4, Y: 4}))

	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 2}, {X: 2, Y: 1}, {X: 4, Y: 1}},
		destinations(MinixiangqiPawn{White}, geometry.Dim7x7, Pos{X: 3, Y: 1}))
}

func TestXiangqiElephant(t *testing.T) {
	assert.ElementsMatch(t,
		[]Pos{{X: 0, Y: 2}, {X: 4, Y: 2}},
		destinations(XiangqiElephant{White}, geometry.Dim9x10, Pos{X: 2, Y: 4}))
	assert.ElementsMatch(t,
		[]Pos{{X: 0, Y: 7}, {X: 4, Y: 7}},
		destinations(XiangqiElephant{Black}, geometry.Dim9x10, Pos{X: 2, Y: 5}))
}

func TestPalaceConfinement(t *testing.T) {
	for _, g := range palace.Geometries() {
		for _, color := range []Color{White, Black} {
			p := palace.Must(g, color)
			for _, m := range []Mobility{XiangqiAdvisor{p}, XiangqiKing{p}, JanggiKing{p}} {
				for _, from := range p {
					for _, to := range destinations(m, g, from) {
						assert.True(t, p.Contains(to.X, to.Y), "%v %v %T %v -> %v", g, color, m, from, to)
					}
				}
			}
		}
	}

	white := palace.Must(geometry.Dim9x10, White)
	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 0}, {X: 5, Y: 0}, {X: 3, Y: 2}, {X: 5, Y: 2}},
		destinations(XiangqiAdvisor{white}, geometry.Dim9x10, Pos{X: 4, Y: 1}))
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 1}},
		destinations(XiangqiAdvisor{white}, geometry.Dim9x10, Pos{X: 3, Y: 0}))
	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}},
		destinations(XiangqiKing{white}, geometry.Dim9x10, Pos{X: 4, Y: 0}))
}

func TestJanggiKing(t *testing.T) {
	white := palace.Must(geometry.Dim9x10, White)
	king := JanggiKing{white}

	// every corner gains exactly the diagonal toward the center
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}},
		destinations(king, geometry.Dim9x10, Pos{X: 3, Y: 0}))
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 1}},
		destinations(king, geometry.Dim9x10, Pos{X: 3, Y: 2}))
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 0}, {X: 5, Y: 1}, {X: 4, Y: 1}},
		destinations(king, geometry.Dim9x10, Pos{X: 5, Y: 0}))

	// edges gain nothing
	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}},
		destinations(king, geometry.Dim9x10, Pos{X: 4, Y: 0}))
	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 0}, {X: 3, Y: 2}, {X: 4, Y: 1}},
		destinations(king, geometry.Dim9x10, Pos{X: 3, Y: 1}))

	assert.Len(t, destinations(king, geometry.Dim9x10, Pos{X: 4, Y: 1}), 8)

	black := palace.Must(geometry.Dim9x10, Black)
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 9}, {X: 3, Y: 8}, {X: 4, Y: 8}},
		destinations(JanggiKing{black}, geometry.Dim9x10, Pos{X: 3, Y: 9}))
}

func TestJanggiRook(t *testing.T) {
	palaces := [2]palace.Palace{
		palace.Must(geometry.Dim9x10, White),
		palace.Must(geometry.Dim9x10, Black),
	}
	rook := JanggiRook{palaces}

	fromCorner := destinations(rook, geometry.Dim9x10, Pos{X: 3, Y: 0})
	assert.Len(t, fromCorner, 17+2)
	assert.Contains(t, fromCorner, Pos{X: 4, Y: 1})
	assert.Contains(t, fromCorner, Pos{X: 5, Y: 2})
	assert.NotContains(t, fromCorner, Pos{X: 6, Y: 3})

	fromTop := destinations(rook, geometry.Dim9x10, Pos{X: 5, Y: 9})
	assert.Contains(t, fromTop, Pos{X: 4, Y: 8})
	assert.Contains(t, fromTop, Pos{X: 3, Y: 7})

	assert.Len(t, destinations(rook, geometry.Dim9x10, Pos{X: 4, Y: 8}), 17+4)
	assert.Len(t, destinations(rook, geometry.Dim9x10, Pos{X: 4, Y: 5}), 17)
}

func TestJanggiPawn(t *testing.T) {
	whitePalace := palace.Must(geometry.Dim9x10, White)
	blackPalace := palace.Must(geometry.Dim9x10, Black)

	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 8}, {X: 2, Y: 7}, {X: 4, Y: 7}, {X: 4, Y: 8}},
		destinations(JanggiPawn{White, blackPalace}, geometry.Dim9x10, Pos{X: 3, Y: 7}))
	assert.ElementsMatch(t,
		[]Pos{{X: 4, Y: 9}, {X: 3, Y: 8}, {X: 5, Y: 8}, {X: 3, Y: 9}, {X: 5, Y: 9}},
		destinations(JanggiPawn{White, blackPalace}, geometry.Dim9x10, Pos{X: 4, Y: 8}))

	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 1}, {X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 1}},
		destinations(JanggiPawn{Black, whitePalace}, geometry.Dim9x10, Pos{X: 3, Y: 2}))
	assert.ElementsMatch(t,
		[]Pos{{X: 3, Y: 6}, {X: 2, Y: 7}, {X: 4, Y: 7}},
		destinations(JanggiPawn{Black, whitePalace}, geometry.Dim9x10, Pos{X: 3, Y: 7}))
}
