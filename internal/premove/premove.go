package premove

import (
	"errors"

	"github.com/cricklet/premove/internal/board"
	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/mobility"
	"github.com/cricklet/premove/internal/variant"
)

var ErrNoPieceAtSource = errors.New("no piece at source")
var ErrSourceOutOfBounds = errors.New("source outside board")

// Mobility resolves the predicate for the piece on key. The rook scan and
// palace lookup happen here, once.
func Mobility(
	pieces board.Pieces,
	key Key,
	canCastle bool,
	g geometry.Geometry,
	v variant.Variant,
	chess960 bool,
) (mobility.Mobility, Error) {
	if !v.IsValid() {
		return mobility.None, Errorf("invalid variant %v", int(v))
	}
	if !g.IsValid() {
		return mobility.None, Errorf("invalid geometry %v", int(g))
	}

	pos, err := PosFromKey(key)
	if !IsNil(err) {
		return mobility.None, Errorf("%v: %w", err, ErrSourceOutOfBounds)
	}
	if !g.Contains(pos) {
		return mobility.None, Errorf("%v on %v: %w", key.Label(), g, ErrSourceOutOfBounds)
	}

	piece, ok := pieces[key]
	if !ok {
		return mobility.None, Errorf("%v: %w", key.Label(), ErrNoPieceAtSource)
	}
	if !piece.Role.IsValid() {
		return mobility.None, NilError
	}

	c := context{
		color:     piece.Color,
		geometry:  g,
		variant:   v,
		canCastle: canCastle,
		chess960:  chess960,
		pieces:    pieces,
	}

	m, err := RulesFor(v)[piece.Role].build(&c)
	if !IsNil(err) {
		return mobility.None, Errorf("%v %v on %v: %w", v, piece.Role, key.Label(), err)
	}
	return m, NilError
}

// Premove lists every square the piece on key could move to, ignoring every
// other piece on the board. Keys come back in file-major order.
func Premove(
	pieces board.Pieces,
	key Key,
	canCastle bool,
	g geometry.Geometry,
	v variant.Variant,
	chess960 bool,
) ([]Key, Error) {
	m, err := Mobility(pieces, key, canCastle, g, v, chess960)
	if !IsNil(err) {
		return nil, err
	}
	return Destinations(m, g, MustPosFromKey(key)), NilError
}

func Destinations(m mobility.Mobility, g geometry.Geometry, from Pos) []Key {
	result := []Key{}
	for _, to := range g.AllPos() {
		if to == from {
			continue
		}
		if m.Reaches(from.X, from.Y, to.X, to.Y) {
			result = append(result, KeyFromPos(to))
		}
	}
	return result
}
