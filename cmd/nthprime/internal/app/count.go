package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lawsonwillard/nthprime/pkg/nthprime"
)

// newCountCommand exposes PrimeCount, the standalone pi(x) operation,
// as "nthprime count <x>".
func newCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <x>",
		Short: "Print pi(x), the number of primes <= x",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parsing x %q", args[0])
			}
			count, err := nthprime.PrimeCount(x)
			if err != nil {
				return errors.Wrapf(err, "counting primes up to %d", x)
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
	return cmd
}
