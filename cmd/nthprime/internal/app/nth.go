package app

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lawsonwillard/nthprime/cmd/nthprime/internal/config"
	"github.com/lawsonwillard/nthprime/internal/obslog"
	"github.com/lawsonwillard/nthprime/pkg/nthprime"
)

func newNthCommand() *cobra.Command {
	var method string
	var segmentSize int
	var regularThreshold int64
	var primeCountingThreshold int64

	cmd := &cobra.Command{
		Use:   "nth <n> [n...]",
		Short: "Print the 0-based n-th prime for one or more indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, logger, err := resolve(cmd)
			if err != nil {
				return err
			}

			var result *multierror.Error
			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					result = multierror.Append(result, errors.Wrapf(err, "parsing index %q", arg))
					continue
				}

				opts := config.Options(v)
				opts.Logger = obslog.New(logger, opts.Method.String(), n)

				p, err := nthprime.NthPrime(n, opts)
				if err != nil {
					result = multierror.Append(result, errors.Wrapf(err, "computing nth prime for n=%d", n))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", n, p)
			}
			if result != nil {
				return result.ErrorOrNil()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&method, config.KeyMethod, "auto", "strategy: auto, regular, segmented, prime-counting")
	cmd.Flags().IntVar(&segmentSize, config.KeySegmentSize, nthprime.DefaultSegmentSize, "integers swept per segmented window")
	cmd.Flags().Int64Var(&regularThreshold, config.KeyRegularThreshold, nthprime.DefaultRegularThreshold, "Auto switches Regular to Segmented above this n")
	cmd.Flags().Int64Var(&primeCountingThreshold, config.KeyPrimeCountingThreshold, nthprime.DefaultPrimeCountingThreshold, "Auto switches Segmented to PrimeCounting above this n")

	return cmd
}
