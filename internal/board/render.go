package board

import (
	"fmt"

	"github.com/acarl005/stripansi"
	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
)

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _whiteBackground = "\033[48;5;244m"
const _blackBackground = "\033[48;5;243m"
const _sourceBackground = "\033[48;5;136m"
const _targetBackground = "\033[48;5;65m"
const _resetColors = "\x1b[0m"

// Render draws the board with the source square and its premove targets
// highlighted. Targets on empty squares show as a dot.
func Render(pieces Pieces, g geometry.Geometry, source Optional[Key], targets []Key) string {
	isTarget := map[Key]bool{}
	for _, k := range targets {
		isTarget[k] = true
	}

	result := "   "
	for x := 0; x < g.Width(); x++ {
		result += _hintForeground + fmt.Sprintf(" %c ", 'a'+x) + _resetColors
	}
	result += "\n"

	for y := g.Height() - 1; y >= 0; y-- {
		result += _hintForeground + fmt.Sprintf("%2d ", y+1) + _resetColors
		for x := 0; x < g.Width(); x++ {
			key := KeyFromPos(Pos{X: x, Y: y})

			switch {
			case source.HasValue() && source.Value() == key:
				result += _sourceBackground
			case isTarget[key]:
				result += _targetBackground
			case (x+y)%2 == 0:
				result += _blackBackground
			default:
				result += _whiteBackground
			}

			piece, ok := pieces[key]
			if ok && piece.Color == White {
				result += _whiteForeground
			} else {
				result += _blackForeground
			}

			cell := "   "
			if ok {
				cell = fmt.Sprintf("%2s ", piece.Fen())
			} else if isTarget[key] {
				cell = " · "
			}
			result += cell + _resetColors
		}
		result += "\n"
	}

	return result
}

// Plain is Render without terminal escapes, for logs and non-tty output.
func Plain(pieces Pieces, g geometry.Geometry, source Optional[Key], targets []Key) string {
	return stripansi.Strip(Render(pieces, g, source, targets))
}
