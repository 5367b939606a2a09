package premove

import (
	"strings"

	"github.com/cricklet/premove/internal/board"
	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/variant"
)

// Runner holds one position and answers premove queries against it.
type Runner struct {
	Logger Logger

	options RunnerOptions

	pieces   board.Pieces
	geometry geometry.Geometry

	StartFen string
}

type RunnerOption func(*Runner)

func WithLogger(logger Logger) RunnerOption {
	return func(r *Runner) {
		r.Logger = logger
	}
}

func WithOptions(options RunnerOptions) RunnerOption {
	return func(r *Runner) {
		r.options = options
	}
}

func NewRunner(options ...RunnerOption) Runner {
	r := Runner{
		Logger:  &SilentLogger,
		options: DefaultRunnerOptions,
	}
	for _, option := range options {
		option(&r)
	}
	return r
}

func (r *Runner) Reset() {
	r.pieces = nil
	r.StartFen = ""
}

func (r *Runner) IsNew() bool {
	return r.pieces == nil
}

func (r *Runner) Variant() variant.Variant {
	return r.options.Variant
}

func (r *Runner) Geometry() geometry.Geometry {
	return r.geometry
}

func (r *Runner) Pieces() board.Pieces {
	return r.pieces
}

func (r *Runner) SetOptions(options RunnerOptions) {
	r.options = options
	r.Reset()
}

// SetupPosition accepts a full FEN or just its board field. "startpos" loads
// the variant's starting placement.
func (r *Runner) SetupPosition(fen string) Error {
	if !r.IsNew() {
		r.Reset()
	}

	fen = strings.TrimSpace(fen)
	if fen == "startpos" || fen == "" {
		fen = r.options.Variant.StartPlacement()
	}

	g := r.options.Geometry.ValueOr(r.options.Variant.Geometry())
	pieces, err := board.ParsePlacement(fen, g)
	if !IsNil(err) {
		return Errorf("couldn't setup %v from %v, %w", r.options.Variant, fen, err)
	}

	r.pieces = pieces
	r.geometry = g
	r.StartFen = fen

	r.Logger.Println("setup", r.options.Variant, g, len(pieces), "pieces")
	return NilError
}

func (r *Runner) Premoves(key Key) ([]Key, Error) {
	if r.IsNew() {
		return nil, Errorf("position not setup")
	}
	return Premove(r.pieces, key, r.options.CanCastle, r.geometry, r.options.Variant, r.options.Chess960)
}

// MovesForSelection takes a square label like "e2" or "a10" and returns the
// destination labels.
func (r *Runner) MovesForSelection(selection string) ([]string, Error) {
	key, err := KeyFromLabel(selection)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection %w", err)
	}

	keys, err := r.Premoves(key)
	if !IsNil(err) {
		return nil, err
	}

	r.Logger.Printf("%v: %v premoves\n", selection, len(keys))
	return MapSlice(keys, func(k Key) string {
		return k.Label()
	}), NilError
}

func (r *Runner) FenString() string {
	if r.IsNew() {
		return ""
	}
	return board.Placement(r.pieces, r.geometry)
}

func (r *Runner) String() string {
	if r.IsNew() {
		return "empty runner"
	}
	return board.Plain(r.pieces, r.geometry, Empty[Key](), nil)
}
