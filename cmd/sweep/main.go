package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sort"
	"time"

	"github.com/cricklet/premove/internal/board"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/premove"
	"github.com/cricklet/premove/internal/variant"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

type result struct {
	variant  variant.Variant
	pieces   int
	premoves int
	failures []string
}

// sweepStart counts premoves for every piece of the starting position.
func sweepStart(v variant.Variant, progress ProgressBar) result {
	r := result{variant: v}
	pieces, err := board.ParsePlacement(v.StartPlacement(), v.Geometry())
	if !IsNil(err) {
		r.failures = append(r.failures, err.Error())
		return r
	}
	for key := range pieces {
		keys, err := premove.Premove(pieces, key, true, v.Geometry(), v, false)
		if !IsNil(err) {
			r.failures = append(r.failures, fmt.Sprintf("%v: %v", key.Label(), err))
		}
		r.pieces++
		r.premoves += len(keys)
		progress.Add(1)
	}
	return r
}

// sweepSquares places every supported role of both colors alone on every
// square of the board.
func sweepSquares(v variant.Variant, progress ProgressBar) result {
	r := result{variant: v}
	g := v.Geometry()
	for role := Role(0); int(role) < NumRoles; role++ {
		if !premove.Supports(v, role) {
			continue
		}
		for _, color := range []Color{White, Black} {
			for _, key := range g.AllKeys() {
				pieces := board.Pieces{key: Piece{Role: role, Color: color}}
				keys, err := premove.Premove(pieces, key, true, g, v, false)
				if !IsNil(err) {
					r.failures = append(r.failures, fmt.Sprintf("%v %v: %v", Piece{Role: role, Color: color}, key.Label(), err))
				}
				r.pieces++
				r.premoves += len(keys)
			}
		}
	}
	progress.Add(1)
	return r
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	args := os.Args[1:]
	full := Contains(args, "full")

	total := 0
	if full {
		total = len(variant.AllVariants)
	} else {
		for _, v := range variant.AllVariants {
			pieces, err := board.ParsePlacement(v.StartPlacement(), v.Geometry())
			if IsNil(err) {
				total += len(pieces)
			}
		}
	}

	progress := SilentProgressBar
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = CreateProgressBar(total, "sweep")
	}

	start := time.Now()
	results := []result{}
	for _, v := range variant.AllVariants {
		if full {
			results = append(results, sweepSquares(v, progress))
		} else {
			results = append(results, sweepStart(v, progress))
		}
	}
	progress.Close()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].premoves > results[j].premoves
	})

	pieces, premoves, failures := 0, 0, 0
	for _, r := range results {
		fmt.Printf("%-14v %8v pieces %10v premoves\n",
			r.variant, humanize.Comma(int64(r.pieces)), humanize.Comma(int64(r.premoves)))
		for _, f := range r.failures {
			fmt.Println(Indent(f, "  "))
		}
		pieces += r.pieces
		premoves += r.premoves
		failures += len(r.failures)
	}

	fmt.Printf("%v pieces, %v premoves, %v failures in %v\n",
		humanize.Comma(int64(pieces)), humanize.Comma(int64(premoves)), failures,
		time.Since(start).Round(time.Millisecond))
	if failures > 0 {
		os.Exit(1)
	}
}
