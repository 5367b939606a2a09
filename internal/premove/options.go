package premove

import (
	"fmt"
	"strings"

	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/variant"
)

type RunnerOptions struct {
	Variant   variant.Variant
	Geometry  Optional[geometry.Geometry]
	CanCastle bool
	Chess960  bool
}

var DefaultRunnerOptions = RunnerOptions{
	Variant:   variant.Chess,
	Geometry:  Empty[geometry.Geometry](),
	CanCastle: true,
	Chess960:  false,
}

var AllRunnerOptions = []string{
	"variant=<name>",
	"geometry=<width>x<height>",
	"chess960",
	"nocastle",
}

func RunnerOptionsFromArgs(args ...string) (RunnerOptions, Error) {
	options := DefaultRunnerOptions

	for _, arg := range args {
		if strings.HasPrefix(arg, "variant=") {
			v, err := variant.VariantFromString(strings.TrimPrefix(arg, "variant="))
			if !IsNil(err) {
				return options, err
			}
			options.Variant = v
		} else if strings.HasPrefix(arg, "geometry=") {
			g, err := geometry.GeometryFromString(strings.TrimPrefix(arg, "geometry="))
			if !IsNil(err) {
				return options, err
			}
			options.Geometry = Some(g)
		} else if arg == "chess960" {
			options.Chess960 = true
		} else if arg == "nocastle" {
			options.CanCastle = false
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
	}

	return options, NilError
}

func (o RunnerOptions) String() string {
	g := o.Geometry.ValueOr(o.Variant.Geometry())
	return fmt.Sprintf("%v %v castle=%v chess960=%v", o.Variant, g, o.CanCastle, o.Chess960)
}
