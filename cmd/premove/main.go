package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cricklet/premove/internal/board"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/premove"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

func isOption(arg string) bool {
	return strings.Contains(arg, "=") || arg == "chess960" || arg == "nocastle"
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdPremoveMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) > 0 && args[0] == "options" {
		for _, option := range premove.AllRunnerOptions {
			fmt.Println(option)
		}
		return
	}

	options, err := premove.RunnerOptionsFromArgs(FilterSlice(args, isOption)...)
	if !IsNil(err) {
		panic(err)
	}
	positional := FilterSlice(args, func(arg string) bool {
		return !isOption(arg)
	})

	logger := Logger(&SilentLogger)
	if Contains(os.Environ(), "PREMOVE_DEBUG=1") {
		logger = FuncLogger(func(s string) {
			fmt.Fprint(os.Stderr, s)
		})
	}

	r := premove.NewRunner(premove.WithOptions(options), premove.WithLogger(logger))

	fen := "startpos"
	if len(positional) > 0 {
		fen = positional[0]
	}
	err = r.SetupPosition(fen)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	render := board.Plain
	if term.IsTerminal(int(os.Stdout.Fd())) {
		render = board.Render
	}

	var show = func(selection string) Error {
		key, err := KeyFromLabel(selection)
		if !IsNil(err) {
			return err
		}
		targets, err := r.Premoves(key)
		if !IsNil(err) {
			return err
		}
		fmt.Print(render(r.Pieces(), r.Geometry(), Some(key), targets))
		fmt.Println(strings.Join(MapSlice(targets, func(k Key) string {
			return k.Label()
		}), " "))
		return NilError
	}

	if len(positional) > 1 {
		for _, selection := range positional[1:] {
			err := show(selection)
			if !IsNil(err) {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		}
		return
	}

	fmt.Print(render(r.Pieces(), r.Geometry(), Empty[Key](), nil))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "quit" {
			break
		}
		if input == "" {
			continue
		}
		err := show(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}
