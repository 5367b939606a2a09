package board

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/mobility"
)

var ErrInvalidFen = errors.New("invalid fen")

// Pieces is the caller's board state. The engine only ever reads it.
type Pieces map[Key]Piece

// FilesOf lists, ascending and once each, the files on rank holding a piece of
// the given role and color.
func FilesOf(pieces Pieces, color Color, role Role, rank int) []int {
	files := []int{}
	for key, piece := range pieces {
		if piece.Color != color || piece.Role != role {
			continue
		}
		pos, err := PosFromKey(key)
		if !IsNil(err) || pos.Y != rank {
			continue
		}
		files = append(files, pos.X)
	}
	return SortedSet(files)
}

// RookFiles are the castling partners on color's back rank.
func RookFiles(pieces Pieces, color Color) []int {
	return FilesOf(pieces, color, RoleR, mobility.Backrank(color))
}

// RookFilesShako looks one rank further in, where shako rooks start.
func RookFilesShako(pieces Pieces, color Color) []int {
	return FilesOf(pieces, color, RoleR, mobility.ShakoBackrank(color))
}

// ParsePlacement reads the board field of a FEN. Empty runs may span several
// digits, '+' promotes the next piece, and a trailing [pocket] is ignored.
func ParsePlacement(fen string, g geometry.Geometry) (Pieces, Error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, Errorf("empty placement: %w", ErrInvalidFen)
	}
	placement := fields[0]
	if i := strings.IndexByte(placement, '['); i != -1 {
		placement = placement[:i]
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != g.Height() {
		return nil, Errorf("%v ranks in '%v', want %v for %v: %w", len(ranks), fen, g.Height(), g, ErrInvalidFen)
	}

	pieces := Pieces{}
	for i, rankString := range ranks {
		y := g.Height() - 1 - i
		x := 0
		promoted := false
		empty := ""

		flushEmpty := func() Error {
			if empty == "" {
				return NilError
			}
			n, err := strconv.Atoi(empty)
			if err != nil {
				return Errorf("bad empty run '%v' in '%v': %w", empty, fen, ErrInvalidFen)
			}
			x += n
			empty = ""
			return NilError
		}

		for _, c := range rankString {
			switch {
			case c >= '0' && c <= '9':
				empty += string(c)
				continue
			case c == '+':
				promoted = true
				continue
			case c == '~':
				// crazyhouse marks promoted pawns this way; they move as what they became
				continue
			}

			if err := flushEmpty(); !IsNil(err) {
				return nil, err
			}
			piece, err := PieceFromFen(c, promoted)
			if !IsNil(err) {
				return nil, Errorf("'%v' in '%v': %w", err, fen, ErrInvalidFen)
			}
			if x >= g.Width() {
				return nil, Errorf("rank %v overflows in '%v': %w", y+1, fen, ErrInvalidFen)
			}
			pieces[KeyFromPos(Pos{X: x, Y: y})] = piece
			promoted = false
			x++
		}
		if err := flushEmpty(); !IsNil(err) {
			return nil, err
		}
		if promoted {
			return nil, Errorf("dangling '+' in '%v': %w", fen, ErrInvalidFen)
		}
		if x != g.Width() {
			return nil, Errorf("rank %v has %v files in '%v', want %v: %w", y+1, x, fen, g.Width(), ErrInvalidFen)
		}
	}

	return pieces, NilError
}

func Placement(pieces Pieces, g geometry.Geometry) string {
	rows := []string{}
	for y := g.Height() - 1; y >= 0; y-- {
		row := ""
		numEmpty := 0
		for x := 0; x < g.Width(); x++ {
			piece, ok := pieces[KeyFromPos(Pos{X: x, Y: y})]
			if !ok {
				numEmpty++
				continue
			}
			if numEmpty > 0 {
				row += strconv.Itoa(numEmpty)
				numEmpty = 0
			}
			row += piece.Fen()
		}
		if numEmpty > 0 {
			row += strconv.Itoa(numEmpty)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "/")
}
