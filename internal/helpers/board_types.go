package helpers

import (
	"fmt"
	"strconv"
)

type Color uint

const (
	White Color = iota
	Black
	NoColor
)

var _colorStrings = [3]string{
	"white", "black", "none",
}

func (c Color) String() string {
	if c > NoColor {
		return "invalid"
	}
	return _colorStrings[c]
}

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func ColorFromString(s string) (Color, Error) {
	switch s {
	case "white", "w":
		return White, NilError
	case "black", "b":
		return Black, NilError
	default:
		return NoColor, Errorf("invalid color %v", s)
	}
}

// Role is the letter-keyed movement tag of a piece. What a letter moves like
// depends on the variant; RolePA..RolePZ are the promoted forms.
type Role uint

const (
	RoleA Role = iota
	RoleB
	RoleC
	RoleD
	RoleE
	RoleF
	RoleG
	RoleH
	RoleI
	RoleJ
	RoleK
	RoleL
	RoleM
	RoleN
	RoleO
	RoleP
	RoleQ
	RoleR
	RoleS
	RoleT
	RoleU
	RoleV
	RoleW
	RoleX
	RoleY
	RoleZ
	RolePA
	RolePB
	RolePC
	RolePD
	RolePE
	RolePF
	RolePG
	RolePH
	RolePI
	RolePJ
	RolePK
	RolePL
	RolePM
	RolePN
	RolePO
	RolePP
	RolePQ
	RolePR
	RolePS
	RolePT
	RolePU
	RolePV
	RolePW
	RolePX
	RolePY
	RolePZ

	NumRoles = int(iota)
)

const _lettersPerRole = 26

func (r Role) IsValid() bool {
	return int(r) < NumRoles
}

func (r Role) Promoted() bool {
	return r >= RolePA && r.IsValid()
}

// Letter is the lowercase FEN letter, shared by a role and its promoted form.
func (r Role) Letter() byte {
	return 'a' + byte(r%_lettersPerRole)
}

func (r Role) Promote() Role {
	if r.Promoted() {
		return r
	}
	return r + _lettersPerRole
}

func (r Role) Unpromote() Role {
	if r.Promoted() {
		return r - _lettersPerRole
	}
	return r
}

func (r Role) String() string {
	if !r.IsValid() {
		return "invalid-piece"
	}
	if r.Promoted() {
		return "p" + string(r.Letter()) + "-piece"
	}
	return string(r.Letter()) + "-piece"
}

func RoleFromLetter(c byte, promoted bool) (Role, Error) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0, Errorf("invalid role letter %q", c)
	}
	r := Role(c - 'a')
	if promoted {
		r = r.Promote()
	}
	return r, NilError
}

func RoleFromString(s string) (Role, Error) {
	switch {
	case len(s) == 7 && s[1:] == "-piece":
		return RoleFromLetter(s[0], false)
	case len(s) == 8 && s[0] == 'p' && s[2:] == "-piece":
		return RoleFromLetter(s[1], true)
	}
	return 0, Errorf("invalid role %v", s)
}

type Piece struct {
	Role  Role
	Color Color
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Role.String()
}

// Fen is the board-field spelling: uppercase for white, '+' prefix when promoted.
func (p Piece) Fen() string {
	c := p.Role.Letter()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	if p.Role.Promoted() {
		return "+" + string(c)
	}
	return string(c)
}

func PieceFromFen(c rune, promoted bool) (Piece, Error) {
	var color Color
	switch {
	case c >= 'A' && c <= 'Z':
		color = White
	case c >= 'a' && c <= 'z':
		color = Black
	default:
		return Piece{}, Errorf("invalid piece %q", c)
	}
	role, err := RoleFromLetter(byte(c), promoted)
	if !IsNil(err) {
		return Piece{}, err
	}
	return Piece{Role: role, Color: color}, NilError
}

type Pos struct {
	X int
	Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Key is the two character square label: file 'a'+x, rank '1'+y. Ranks past
// the ninth continue through ASCII, so rank index 9 is ':'.
type Key string

const MaxFiles = 16
const MaxRanks = 16

func KeyFromPos(p Pos) Key {
	return Key([]byte{'a' + byte(p.X), '1' + byte(p.Y)})
}

func PosFromKey(k Key) (Pos, Error) {
	if len(k) != 2 {
		return Pos{}, Errorf("invalid key %q", string(k))
	}
	x := int(k[0]) - 'a'
	y := int(k[1]) - '1'
	if x < 0 || x >= MaxFiles || y < 0 || y >= MaxRanks {
		return Pos{}, Errorf("invalid key %q", string(k))
	}
	return Pos{x, y}, NilError
}

func MustPosFromKey(k Key) Pos {
	p, err := PosFromKey(k)
	if !IsNil(err) {
		panic(err)
	}
	return p
}

// Label is the human spelling of a key, "a10" rather than "a:".
func (k Key) Label() string {
	p, err := PosFromKey(k)
	if !IsNil(err) {
		return string(k)
	}
	return string(k[0]) + strconv.Itoa(p.Y+1)
}

func KeyFromLabel(s string) (Key, Error) {
	if len(s) < 2 {
		return "", Errorf("invalid square %q", s)
	}
	x := int(s[0]) - 'a'
	rank, err := strconv.Atoi(s[1:])
	if err != nil || x < 0 || x >= MaxFiles || rank < 1 || rank > MaxRanks {
		return "", Errorf("invalid square %q", s)
	}
	return KeyFromPos(Pos{x, rank - 1}), NilError
}
