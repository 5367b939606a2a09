package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRoundTrip(t *testing.T) {
	for x := 0; x < 12; x++ {
		for y := 0; y < 12; y++ {
			p := Pos{x, y}
			k := KeyFromPos(p)
			back, err := PosFromKey(k)
			assert.True(t, IsNil(err))
			assert.Equal(t, p, back)

			fromLabel, err := KeyFromLabel(k.Label())
			assert.True(t, IsNil(err))
			assert.Equal(t, k, fromLabel)
		}
	}
}

func TestKeyLabels(t *testing.T) {
	assert.Equal(t, Key("e1"), KeyFromPos(Pos{4, 0}))
	assert.Equal(t, Key("a:"), KeyFromPos(Pos{0, 9}))
	assert.Equal(t, "a10", Key("a:").Label())
	assert.Equal(t, "l12", KeyFromPos(Pos{11, 11}).Label())

	_, err := PosFromKey("e")
	assert.False(t, IsNil(err))
	_, err = KeyFromLabel("z0")
	assert.False(t, IsNil(err))
}

func TestRoles(t *testing.T) {
	assert.Equal(t, 52, NumRoles)
	assert.Equal(t, "r-piece", RoleR.String())
	assert.Equal(t, "pr-piece", RolePR.String())
	assert.Equal(t, RolePR, RoleR.Promote())
	assert.Equal(t, RoleR, RolePR.Unpromote())
	assert.Equal(t, byte('r'), RolePR.Letter())

	for r := Role(0); int(r) < NumRoles; r++ {
		parsed, err := RoleFromString(r.String())
		assert.True(t, IsNil(err), r.String())
		assert.Equal(t, r, parsed)
	}

	_, err := RoleFromString("rook")
	assert.False(t, IsNil(err))
}

func TestPieceFen(t *testing.T) {
	p, err := PieceFromFen('R', false)
	assert.True(t, IsNil(err))
	assert.Equal(t, Piece{RoleR, White}, p)
	assert.Equal(t, "R", p.Fen())

	p, err = PieceFromFen('p', true)
	assert.True(t, IsNil(err))
	assert.Equal(t, Piece{RolePP, Black}, p)
	assert.Equal(t, "+p", p.Fen())

	_, err = PieceFromFen('3', false)
	assert.False(t, IsNil(err))
}

func TestColors(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, NoColor, NoColor.Other())
	c, err := ColorFromString("b")
	assert.True(t, IsNil(err))
	assert.Equal(t, Black, c)
}
