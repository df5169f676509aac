package main

import (
	"fmt"
	"os"

	"github.com/andy/zentime/internal/app"
	"github.com/andy/zentime/internal/cli"
)

func main() {
	// Skip app initialization for help output so that a missing or broken
	// data directory never blocks --help
	skipInit := false
	for _, a := range os.Args[1:] {
		if a == "-h" || a == "--help" || a == "help" {
			skipInit = true
			break
		}
	}

	if !skipInit {
		a, err := app.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		cli.SetApp(a)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
