package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lawsonwillard/nthprime/cmd/nthprime/internal/config"
	"github.com/lawsonwillard/nthprime/internal/obslog"
	"github.com/lawsonwillard/nthprime/pkg/nthprime"
)

// newPrimesCommand lists the first count primes by repeatedly calling
// NthPrime. It is a CLI convenience built on top of the core, which
// itself exposes no streaming or enumeration primitive.
func newPrimesCommand() *cobra.Command {
	var progress bool

	cmd := &cobra.Command{
		Use:   "primes <count>",
		Short: "List the first count primes, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parsing count %q", args[0])
			}

			v, logger, err := resolve(cmd)
			if err != nil {
				return err
			}
			opts := config.Options(v)
			opts.Logger = obslog.New(logger, opts.Method.String(), count)

			milestone := count / 10
			out := cmd.OutOrStdout()
			for n := int64(0); n < count; n++ {
				p, err := nthprime.NthPrime(n, opts)
				if err != nil {
					return errors.Wrapf(err, "listing prime %d", n)
				}
				fmt.Fprintln(out, p)
				if progress && milestone > 0 && (n+1)%milestone == 0 {
					opts.Logger.Logf("primes: %d/%d emitted", n+1, count)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&progress, "progress", false, "log periodic progress to the advisory logger")
	return cmd
}
