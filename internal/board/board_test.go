package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement(t *testing.T) {
	pieces, err := ParsePlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", geometry.Dim8x8)
	require.True(t, IsNil(err), err)

	assert.Len(t, pieces, 32)
	assert.Equal(t, Piece{Role: RoleK, Color: White}, pieces["e1"])
	assert.Equal(t, Piece{Role: RoleQ, Color: Black}, pieces["d8"])
	assert.Equal(t, Piece{Role: RoleP, Color: White}, pieces["h2"])
	_, ok := pieces["e4"]
	assert.False(t, ok)
}

func TestParsePlacementLargeBoards(t *testing.T) {
	pieces, err := ParsePlacement("r8r/1nbqkcabn1/pppppppppp/10/10/10/10/PPPPPPPPPP/1NBQKCABN1/R8R", geometry.Dim10x10)
	require.True(t, IsNil(err), err)
	assert.Equal(t, Piece{Role: RoleR, Color: Black}, pieces["j:"])
	assert.Equal(t, Piece{Role: RoleK, Color: White}, pieces["e2"])
	assert.Equal(t, Piece{Role: RoleC, Color: Black}, pieces["f9"])

	pieces, err = ParsePlacement("lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL[-] w 0 1", geometry.Dim9x9)
	require.True(t, IsNil(err), err)
	assert.Len(t, pieces, 40)
}

func TestParsePromoted(t *testing.T) {
	pieces, err := ParsePlacement("p+nks+l/5/5/5/+LSK+NP", geometry.Dim5x5)
	require.True(t, IsNil(err), err)
	assert.Equal(t, Piece{Role: RolePN, Color: Black}, pieces["b5"])
	assert.Equal(t, Piece{Role: RolePL, Color: White}, pieces["a1"])
	assert.Equal(t, Piece{Role: RoleS, Color: White}, pieces["b1"])
	assert.Equal(t, "p+nks+l/5/5/5/+LSK+NP", Placement(pieces, geometry.Dim5x5))

	pieces, err = ParsePlacement("4k3/8/8/8/8/8/8/3Q~K3", geometry.Dim8x8)
	require.True(t, IsNil(err), err)
	assert.Equal(t, Piece{Role: RoleQ, Color: White}, pieces["d1"])
}

func TestParsePlacementErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"8/8/8/8/8/8/8",
		"9/8/8/8/8/8/8/8",
		"7/8/8/8/8/8/8/8",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR",
		"8/8/8/8/8/8/8/7+",
		"8/8/8/8/8/8/8/7*",
	} {
		_, err := ParsePlacement(fen, geometry.Dim8x8)
		assert.False(t, IsNil(err), fen)
		assert.True(t, errors.Is(err, ErrInvalidFen), fen)
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	for _, fen := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR",
	} {
		var g geometry.Geometry
		switch strings.Count(fen, "/") {
		case 7:
			g = geometry.Dim8x8
			if len(strings.Split(fen, "/")[0]) == 10 {
				g = geometry.Dim10x8
			}
		case 9:
			g = geometry.Dim9x10
		}
		pieces, err := ParsePlacement(fen, g)
		require.True(t, IsNil(err), err)
		assert.Equal(t, fen, Placement(pieces, g))
	}
}

func TestRookFiles(t *testing.T) {
	pieces, err := ParsePlacement("r3k2r/8/8/8/8/8/8/R3K1R1", geometry.Dim8x8)
	require.True(t, IsNil(err))
	assert.Equal(t, []int{0, 6}, RookFiles(pieces, White))
	assert.Equal(t, []int{0, 7}, RookFiles(pieces, Black))

	// rooks off the back rank and enemy rooks don't count
	pieces, err = ParsePlacement("4k3/8/8/8/8/8/R7/4K2r", geometry.Dim8x8)
	require.True(t, IsNil(err))
	assert.Equal(t, []int{}, RookFiles(pieces, White))

	shako, err := ParsePlacement("c8c/ernbqkbnre/pppppppppp/10/10/10/10/PPPPPPPPPP/ERNBQKBNRE/C8C", geometry.Dim10x10)
	require.True(t, IsNil(err))
	assert.Equal(t, []int{1, 8}, RookFilesShako(shako, White))
	assert.Equal(t, []int{1, 8}, RookFilesShako(shako, Black))
	assert.Equal(t, []int{}, RookFiles(shako, White))
}

func TestRender(t *testing.T) {
	pieces, err := ParsePlacement("4k3/8/8/8/8/8/8/4K3", geometry.Dim8x8)
	require.True(t, IsNil(err))

	plain := Plain(pieces, geometry.Dim8x8, Some[Key]("e1"), []Key{"d1", "e2"})
	lines := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "    a  b  c  d  e  f  g  h ", lines[0])
	assert.Equal(t, " 1           ·  K          ", lines[8])
	assert.Equal(t, " 2              ·          ", lines[7])
	assert.NotContains(t, plain, "\033[")
	assert.Contains(t, Render(pieces, geometry.Dim8x8, Empty[Key](), nil), "\033[")
}
