// Command nthprime is a CLI driver over the pkg/nthprime core: it
// parses flags and config, resolves Options, calls NthPrime or
// PrimeCount, and reports results and advisory log messages to the
// console. All of this lives outside the core by design.
package main

import (
	"fmt"
	"os"

	"github.com/lawsonwillard/nthprime/cmd/nthprime/internal/app"
)

func main() {
	root := app.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
