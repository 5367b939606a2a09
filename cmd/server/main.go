package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"

	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	port := 8002

	args := os.Args[1:]
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			port = int(parsed)
		}
	}

	var err Error
	log.Println("serving at", port)

	router := server.NewRouter(&DefaultLogger)
	err = Wrap(http.ListenAndServe(fmt.Sprintf(":%v", port), router))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
