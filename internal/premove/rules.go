package premove

import (
	"github.com/cricklet/premove/internal/board"
	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/mobility"
	"github.com/cricklet/premove/internal/palace"
	"github.com/cricklet/premove/internal/variant"
)

// context is everything a builder may need, resolved once per call.
type context struct {
	color     Color
	geometry  geometry.Geometry
	variant   variant.Variant
	canCastle bool
	chess960  bool
	pieces    board.Pieces
}

type builder func(c *context) (mobility.Mobility, Error)

type rule struct {
	build     builder
	supported bool
}

// Rules maps every role to a builder. Roles a family doesn't use hold
// unsupported.
type Rules [NumRoles]rule

func unsupported(c *context) (mobility.Mobility, Error) {
	return mobility.None, NilError
}

func fixed(m mobility.Mobility) builder {
	return func(c *context) (mobility.Mobility, Error) {
		return m, NilError
	}
}

func colored[M mobility.Mobility](f func(Color) M) builder {
	return func(c *context) (mobility.Mobility, Error) {
		return f(c.color), NilError
	}
}

func castlingKing(c *context) (mobility.Mobility, Error) {
	switch c.variant.Castling() {
	case variant.StandardCastling:
		rights := mobility.CastlingRights{Color: c.color, RookFiles: board.RookFiles(c.pieces, c.color), CanCastle: c.canCastle}
		if c.chess960 {
			return mobility.King960{CastlingRights: rights}, NilError
		}
		return mobility.King{CastlingRights: rights}, NilError
	case variant.CapablancaCastling:
		rights := mobility.CastlingRights{Color: c.color, RookFiles: board.RookFiles(c.pieces, c.color), CanCastle: c.canCastle}
		if c.chess960 {
			return mobility.King960{CastlingRights: rights}, NilError
		}
		return mobility.KingCapablanca{CastlingRights: rights}, NilError
	case variant.ShakoCastling:
		rights := mobility.CastlingRights{Color: c.color, RookFiles: board.RookFilesShako(c.pieces, c.color), CanCastle: c.canCastle}
		return mobility.KingShako{CastlingRights: rights}, NilError
	}
	return mobility.KingNoCastling, NilError
}

func xiangqiAdvisor(c *context) (mobility.Mobility, Error) {
	p, err := palace.For(c.geometry, c.color)
	if !IsNil(err) {
		return mobility.None, err
	}
	return mobility.XiangqiAdvisor{Palace: p}, NilError
}

func xiangqiKing(c *context) (mobility.Mobility, Error) {
	p, err := palace.For(c.geometry, c.color)
	if !IsNil(err) {
		return mobility.None, err
	}
	return mobility.XiangqiKing{Palace: p}, NilError
}

func janggiKing(c *context) (mobility.Mobility, Error) {
	p, err := palace.For(c.geometry, c.color)
	if !IsNil(err) {
		return mobility.None, err
	}
	return mobility.JanggiKing{Palace: p}, NilError
}

func janggiPawn(c *context) (mobility.Mobility, Error) {
	p, err := palace.For(c.geometry, c.color.Other())
	if !IsNil(err) {
		return mobility.None, err
	}
	return mobility.JanggiPawn{Color: c.color, EnemyPalace: p}, NilError
}

func janggiRook(c *context) (mobility.Mobility, Error) {
	white, err := palace.For(c.geometry, White)
	if !IsNil(err) {
		return mobility.None, err
	}
	black, err := palace.For(c.geometry, Black)
	if !IsNil(err) {
		return mobility.None, err
	}
	return mobility.JanggiRook{Palaces: [2]palace.Palace{white, black}}, NilError
}

var pawn = colored(func(c Color) mobility.Pawn { return mobility.Pawn{Color: c} })
var pawnNoDoubleStep = colored(func(c Color) mobility.PawnNoDoubleStep { return mobility.PawnNoDoubleStep{Color: c} })
var pawnGrand = colored(func(c Color) mobility.PawnGrand { return mobility.PawnGrand{Color: c} })

var shogiPawn = colored(func(c Color) mobility.ShogiPawn { return mobility.ShogiPawn{Color: c} })
var shogiLance = colored(func(c Color) mobility.ShogiLance { return mobility.ShogiLance{Color: c} })
var shogiKnight = colored(func(c Color) mobility.ShogiKnight { return mobility.ShogiKnight{Color: c} })
var shogiSilver = colored(func(c Color) mobility.ShogiSilver { return mobility.ShogiSilver{Color: c} })
var shogiGold = colored(func(c Color) mobility.ShogiGold { return mobility.ShogiGold{Color: c} })

func newRules(entries map[Role]builder) Rules {
	var result Rules
	for i := range result {
		result[i] = rule{unsupported, false}
	}
	for role, b := range entries {
		result[role] = rule{b, true}
	}
	return result
}

var _orthodox = map[Role]builder{
	RoleP: pawn,
	RoleR: fixed(mobility.Rook),
	RoleN: fixed(mobility.Knight),
	RoleB: fixed(mobility.Bishop),
	RoleQ: fixed(mobility.Queen),
	RoleK: castlingKing,
	// seirawan elephant and hawk share letters with capablanca's pieces
	RoleE: fixed(mobility.Chancellor),
	RoleC: fixed(mobility.Chancellor),
	RoleH: fixed(mobility.Archbishop),
	RoleA: fixed(mobility.Archbishop),
}

var _shogi = map[Role]builder{
	RoleK:  fixed(mobility.KingNoCastling),
	RoleG:  shogiGold,
	RoleR:  fixed(mobility.Rook),
	RoleB:  fixed(mobility.Bishop),
	RoleS:  shogiSilver,
	RoleN:  shogiKnight,
	RoleL:  shogiLance,
	RoleP:  shogiPawn,
	RolePR: fixed(mobility.ShogiDragon),
	RolePB: fixed(mobility.ShogiHorse),
	RolePS: shogiGold,
	RolePN: shogiGold,
	RolePL: shogiGold,
	RolePP: shogiGold,
}

var _xiangqi = map[Role]builder{
	RoleK: xiangqiKing,
	RoleA: xiangqiAdvisor,
	RoleB: colored(func(c Color) mobility.XiangqiElephant { return mobility.XiangqiElephant{Color: c} }),
	RoleN: fixed(mobility.Knight),
	RoleR: fixed(mobility.Rook),
	RoleC: fixed(mobility.Rook),
	RoleP: colored(func(c Color) mobility.XiangqiPawn { return mobility.XiangqiPawn{Color: c} }),
}

func extend(base map[Role]builder, extra map[Role]builder) map[Role]builder {
	result := map[Role]builder{}
	for role, b := range base {
		result[role] = b
	}
	for role, b := range extra {
		result[role] = b
	}
	return result
}

var _rules = [variant.NumFamilies]Rules{
	variant.OrthodoxFamily:   newRules(_orthodox),
	variant.CapablancaFamily: newRules(_orthodox),
	variant.GrandFamily: newRules(extend(_orthodox, map[Role]builder{
		RoleP: pawnGrand,
	})),
	variant.ShakoFamily: newRules(extend(_orthodox, map[Role]builder{
		RoleP: pawnGrand,
		RoleE: fixed(mobility.ShakoElephant),
		RoleC: fixed(mobility.Rook),
	})),
	variant.ShogunFamily: newRules(extend(_orthodox, map[Role]builder{
		RoleF:  fixed(mobility.Ferz),
		RolePP: fixed(mobility.KingNoCastling),
		RolePN: fixed(mobility.Centaur),
		RolePB: fixed(mobility.Archbishop),
		RolePR: fixed(mobility.Chancellor),
		RolePF: fixed(mobility.Queen),
	})),
	variant.MakrukFamily: newRules(map[Role]builder{
		RoleK: fixed(mobility.KingNoCastling),
		RoleS: shogiSilver,
		RoleM: fixed(mobility.Ferz),
		RoleN: fixed(mobility.Knight),
		RoleR: fixed(mobility.Rook),
		RoleP: pawnNoDoubleStep,
	}),
	variant.SittuyinFamily: newRules(map[Role]builder{
		RoleK: fixed(mobility.KingNoCastling),
		RoleS: shogiSilver,
		RoleF: fixed(mobility.Ferz),
		RoleN: fixed(mobility.Knight),
		RoleR: fixed(mobility.Rook),
		RoleP: pawnNoDoubleStep,
	}),
	variant.ASEANFamily: newRules(map[Role]builder{
		RoleK: fixed(mobility.KingNoCastling),
		RoleB: shogiSilver,
		RoleQ: fixed(mobility.Ferz),
		RoleN: fixed(mobility.Knight),
		RoleR: fixed(mobility.Rook),
		RoleP: pawnNoDoubleStep,
	}),
	variant.ShogiFamily: newRules(_shogi),
	variant.KyotoshogiFamily: newRules(map[Role]builder{
		RoleK:  fixed(mobility.KingNoCastling),
		RoleL:  shogiLance,
		RolePL: shogiGold,
		RoleS:  shogiSilver,
		RolePS: fixed(mobility.Bishop),
		RoleN:  shogiKnight,
		RolePN: shogiGold,
		RoleP:  shogiPawn,
		RolePP: fixed(mobility.Rook),
	}),
	variant.DobutsuFamily: newRules(map[Role]builder{
		RoleL:  fixed(mobility.KingNoCastling),
		RoleE:  fixed(mobility.Ferz),
		RoleG:  fixed(mobility.Wazir),
		RoleC:  shogiPawn,
		RolePC: shogiGold,
	}),
	variant.TorishogiFamily: newRules(map[Role]builder{
		RoleK:  fixed(mobility.KingNoCastling),
		RoleC:  fixed(mobility.ToriCrane),
		RoleF:  colored(func(c Color) mobility.ToriFalcon { return mobility.ToriFalcon{Color: c} }),
		RolePF: colored(func(c Color) mobility.ToriEagle { return mobility.ToriEagle{Color: c} }),
		RoleS:  shogiPawn,
		RolePS: colored(func(c Color) mobility.ToriGoose { return mobility.ToriGoose{Color: c} }),
		RoleL:  colored(func(c Color) mobility.ToriLeftQuail { return mobility.ToriLeftQuail{Color: c} }),
		RoleR:  colored(func(c Color) mobility.ToriRightQuail { return mobility.ToriRightQuail{Color: c} }),
		RoleP:  colored(func(c Color) mobility.ToriPheasant { return mobility.ToriPheasant{Color: c} }),
	}),
	variant.XiangqiFamily: newRules(_xiangqi),
	variant.ManchuFamily: newRules(extend(_xiangqi, map[Role]builder{
		RoleM: fixed(mobility.Chancellor),
	})),
	variant.MinixiangqiFamily: newRules(map[Role]builder{
		RoleK: xiangqiKing,
		RoleR: fixed(mobility.Rook),
		RoleC: fixed(mobility.Rook),
		RoleN: fixed(mobility.Knight),
		RoleP: colored(func(c Color) mobility.MinixiangqiPawn { return mobility.MinixiangqiPawn{Color: c} }),
	}),
	variant.JanggiFamily: newRules(map[Role]builder{
		RoleP: janggiPawn,
		RoleR: janggiRook,
		RoleC: janggiRook,
		RoleN: fixed(mobility.Knight),
		RoleB: fixed(mobility.JanggiElephant),
		RoleA: janggiKing,
		RoleK: janggiKing,
	}),
	variant.MusketeerFamily: newRules(extend(_orthodox, map[Role]builder{
		RoleA: fixed(mobility.Archbishop),
		RoleM: fixed(mobility.Chancellor),
		RoleL: fixed(mobility.MusketeerLeopard),
		RoleH: fixed(mobility.MusketeerHawk),
		RoleE: fixed(mobility.MusketeerElephant),
		RoleC: fixed(mobility.MusketeerCannon),
		RoleU: fixed(mobility.MusketeerUnicorn),
		RoleD: fixed(mobility.MusketeerDragon),
		RoleF: fixed(mobility.MusketeerFortress),
		RoleS: fixed(mobility.MusketeerSpider),
	})),
	variant.ChakFamily: newRules(map[Role]builder{
		RoleK:  fixed(mobility.KingNoCastling),
		RolePK: colored(func(c Color) mobility.ChakDivineKing { return mobility.ChakDivineKing{Color: c} }),
		RoleP:  colored(func(c Color) mobility.PawnChak { return mobility.PawnChak{Color: c} }),
		RolePP: colored(func(c Color) mobility.ChakWarrior { return mobility.ChakWarrior{Color: c} }),
		RoleR:  fixed(mobility.Rook),
		RoleV:  fixed(mobility.Knight),
		RoleJ:  fixed(mobility.Centaur),
		RoleQ:  fixed(mobility.Queen),
		RoleS:  fixed(mobility.Ferz),
	}),
	variant.ChennisFamily: newRules(map[Role]builder{
		RoleK:  colored(func(c Color) mobility.KingChennis { return mobility.KingChennis{Color: c} }),
		RoleP:  pawnNoDoubleStep,
		RolePP: fixed(mobility.Rook),
		RoleN:  fixed(mobility.Knight),
		RolePN: fixed(mobility.Bishop),
		RoleR:  fixed(mobility.Rook),
		RoleB:  fixed(mobility.Bishop),
	}),
}

// RulesFor returns the role table used for the variant.
func RulesFor(v variant.Variant) *Rules {
	return &_rules[v.Family()]
}

// Supports reports whether the role has a mapped builder under the variant.
func Supports(v variant.Variant, role Role) bool {
	if !v.IsValid() || !role.IsValid() {
		return false
	}
	return RulesFor(v)[role].supported
}
