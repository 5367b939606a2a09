package variant

import (
	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
)

type Variant uint

const (
	Chess Variant = iota
	Crazyhouse
	Placement
	Horde
	KingOfTheHill
	ThreeCheck
	Seirawan
	Shouse
	Capablanca
	Capahouse
	Gothic
	Grand
	Grandhouse
	Shako
	Shogun
	Makruk
	Makpong
	Cambodian
	Sittuyin
	ASEAN
	Shogi
	Minishogi
	Kyotoshogi
	Dobutsu
	Gorogoroplus
	Torishogi
	Xiangqi
	Manchu
	Minixiangqi
	Janggi
	Musketeer
	Chak
	Chennis

	NumVariants = int(iota)
)

// Family selects the role table a variant's pieces are read from. Variants in
// the same family name their pieces with the same letters.
type Family uint

const (
	OrthodoxFamily Family = iota
	CapablancaFamily
	GrandFamily
	ShakoFamily
	ShogunFamily
	MakrukFamily
	SittuyinFamily
	ASEANFamily
	ShogiFamily
	KyotoshogiFamily
	DobutsuFamily
	TorishogiFamily
	XiangqiFamily
	ManchuFamily
	MinixiangqiFamily
	JanggiFamily
	MusketeerFamily
	ChakFamily
	ChennisFamily

	NumFamilies = int(iota)
)

type Castling uint

const (
	NoCastling Castling = iota
	StandardCastling
	CapablancaCastling
	ShakoCastling
)

type info struct {
	name           string
	family         Family
	geometry       geometry.Geometry
	castling       Castling
	startPlacement string
}

const _chessStart = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
const _capablancaStart = "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR"
const _grandStart = "r8r/1nbqkcabn1/pppppppppp/10/10/10/10/PPPPPPPPPP/1NBQKCABN1/R8R"
const _makrukStart = "rnsmksnr/8/pppppppp/8/8/PPPPPPPP/8/RNSKMSNR"
const _xiangqiStart = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR"

var _variants = [NumVariants]info{
	Chess:         {"chess", OrthodoxFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	Crazyhouse:    {"crazyhouse", OrthodoxFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	Placement:     {"placement", OrthodoxFamily, geometry.Dim8x8, StandardCastling, "8/pppppppp/8/8/8/8/PPPPPPPP/8"},
	Horde:         {"horde", OrthodoxFamily, geometry.Dim8x8, StandardCastling, "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP"},
	KingOfTheHill: {"kingofthehill", OrthodoxFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	ThreeCheck:    {"3check", OrthodoxFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	Seirawan:      {"seirawan", OrthodoxFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	Shouse:        {"shouse", OrthodoxFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	Capablanca:    {"capablanca", CapablancaFamily, geometry.Dim10x8, CapablancaCastling, _capablancaStart},
	Capahouse:     {"capahouse", CapablancaFamily, geometry.Dim10x8, CapablancaCastling, _capablancaStart},
	Gothic:        {"gothic", CapablancaFamily, geometry.Dim10x8, CapablancaCastling, "rnbqckabnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNBQCKABNR"},
	Grand:         {"grand", GrandFamily, geometry.Dim10x10, NoCastling, _grandStart},
	Grandhouse:    {"grandhouse", GrandFamily, geometry.Dim10x10, NoCastling, _grandStart},
	Shako:         {"shako", ShakoFamily, geometry.Dim10x10, ShakoCastling, "c8c/ernbqkbnre/pppppppppp/10/10/10/10/PPPPPPPPPP/ERNBQKBNRE/C8C"},
	Shogun:        {"shogun", ShogunFamily, geometry.Dim8x8, StandardCastling, "rnb+fkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB+FKBNR"},
	Makruk:        {"makruk", MakrukFamily, geometry.Dim8x8, NoCastling, _makrukStart},
	Makpong:       {"makpong", MakrukFamily, geometry.Dim8x8, NoCastling, _makrukStart},
	Cambodian:     {"cambodian", MakrukFamily, geometry.Dim8x8, NoCastling, _makrukStart},
	Sittuyin:      {"sittuyin", SittuyinFamily, geometry.Dim8x8, NoCastling, "8/8/4pppp/pppp4/4PPPP/PPPP4/8/8"},
	ASEAN:         {"asean", ASEANFamily, geometry.Dim8x8, NoCastling, "rnbqkbnr/8/pppppppp/8/8/PPPPPPPP/8/RNBQKBNR"},
	Shogi:         {"shogi", ShogiFamily, geometry.Dim9x9, NoCastling, "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL"},
	Minishogi:     {"minishogi", ShogiFamily, geometry.Dim5x5, NoCastling, "rbsgk/4p/5/P4/KGSBR"},
	Kyotoshogi:    {"kyotoshogi", KyotoshogiFamily, geometry.Dim5x5, NoCastling, "p+nks+l/5/5/5/+LSK+NP"},
	Dobutsu:       {"dobutsu", DobutsuFamily, geometry.Dim3x4, NoCastling, "gle/1c1/1C1/ELG"},
	Gorogoroplus:  {"gorogoroplus", ShogiFamily, geometry.Dim5x6, NoCastling, "sgkgs/5/1ppp1/1PPP1/5/SGKGS"},
	Torishogi:     {"torishogi", TorishogiFamily, geometry.Dim7x7, NoCastling, "rpckcpl/3f3/sssssss/2s1S2/SSSSSSS/3F3/LPCKCPR"},
	Xiangqi:       {"xiangqi", XiangqiFamily, geometry.Dim9x10, NoCastling, _xiangqiStart},
	Manchu:        {"manchu", ManchuFamily, geometry.Dim9x10, NoCastling, "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/9/9/M1BAKAB2"},
	Minixiangqi:   {"minixiangqi", MinixiangqiFamily, geometry.Dim7x7, NoCastling, "rcnkncr/p1ppp1p/7/7/7/P1PPP1P/RCNKNCR"},
	Janggi:        {"janggi", JanggiFamily, geometry.Dim9x10, NoCastling, "rnba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR"},
	Musketeer:     {"musketeer", MusketeerFamily, geometry.Dim8x8, StandardCastling, _chessStart},
	Chak:          {"chak", ChakFamily, geometry.Dim9x9, NoCastling, "rvsqkjsvr/4o4/p1p1p1p1p/9/9/9/P1P1P1P1P/4O4/RVSJKQSVR"},
	Chennis:       {"chennis", ChennisFamily, geometry.Dim7x7, NoCastling, "1nkr3/1pppp2/7/7/7/2PPPP1/3RKN1"},
}

var AllVariants = func() []Variant {
	result := make([]Variant, NumVariants)
	for i := range result {
		result[i] = Variant(i)
	}
	return result
}()

func (v Variant) IsValid() bool {
	return int(v) < NumVariants
}

func (v Variant) String() string {
	if !v.IsValid() {
		return "invalid"
	}
	return _variants[v].name
}

func VariantFromString(s string) (Variant, Error) {
	for _, v := range AllVariants {
		if v.String() == s {
			return v, NilError
		}
	}
	return Chess, Errorf("unknown variant %v", s)
}

func (v Variant) Family() Family {
	return _variants[v].family
}

// Geometry is the board a variant is normally played on. Callers may still
// pass a different geometry to the engine.
func (v Variant) Geometry() geometry.Geometry {
	return _variants[v].geometry
}

func (v Variant) Castling() Castling {
	return _variants[v].castling
}

// StartPlacement is the board field of the starting FEN.
func (v Variant) StartPlacement() string {
	return _variants[v].startPlacement
}
