package main // entry point for the cardio-risk binary

import (
	"fmt" // error output
	"os"  // exit status

	"github.com/iliyamo/cardio-risk-service/internal/cli" // cobra commands (serve, score, inspect)
)

// main hands control to cobra and maps any returned error to exit code 1.
func main() {
	if err := cli.Execute(); err != nil { // run the selected subcommand
		fmt.Fprintln(os.Stderr, err) // cobra is silenced on usage, so print here
		os.Exit(1)
	}
}
