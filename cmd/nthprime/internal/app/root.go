// Package app wires nthprime's core into a cobra-based command-line
// driver. It is an external collaborator of the core in exactly the
// sense the core's design calls for: it owns flag parsing, config
// resolution, console reporting, and logging, and consumes the core
// only through its exported Options and NthPrime/PrimeCount functions.
package app

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lawsonwillard/nthprime/cmd/nthprime/internal/config"
	"github.com/lawsonwillard/nthprime/internal/obslog"
)

var (
	cfgFile string
	logFmt  string
	verbose bool
)

// NewRootCommand builds the nthprime root cobra.Command and its
// subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nthprime",
		Short:         "Compute the n-th prime and prime-counting values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .nthprime.{yaml,toml,json} in . or $HOME)")
	root.PersistentFlags().StringVar(&logFmt, "log-format", "text", "advisory log format: text or json")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level advisory logging")

	root.AddCommand(newNthCommand())
	root.AddCommand(newPrimesCommand())
	root.AddCommand(newCountCommand())

	return root
}

// resolve loads config+flags precedence for the given command, wrapping
// any load failure with a stack-trace-preserving annotation for the
// operator.
func resolve(cmd *cobra.Command) (*viper.Viper, *logrus.Logger, error) {
	v, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading nthprime configuration")
	}
	logger := obslog.NewLogger(v.GetString(config.KeyLogFormat), v.GetBool(config.KeyVerbose))
	return v, logger, nil
}
