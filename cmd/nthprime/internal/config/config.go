// Package config resolves nthprime's CLI options by layering, in
// increasing precedence, built-in defaults, an optional config file,
// NTHPRIME_-prefixed environment variables, and command-line flags.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lawsonwillard/nthprime/pkg/nthprime"
)

// Keys used both as viper config keys and as flag names.
const (
	KeyMethod                 = "method"
	KeySegmentSize            = "segment-size"
	KeyRegularThreshold       = "regular-threshold"
	KeyPrimeCountingThreshold = "prime-counting-threshold"
	KeyLogFormat              = "log-format"
	KeyVerbose                = "verbose"
)

// Load builds a viper instance seeded with defaults, an optional config
// file (cfgFile, or a discovered .nthprime.{yaml,toml,json} otherwise),
// NTHPRIME_-prefixed environment variables, and the given flag set.
func Load(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyMethod, "auto")
	v.SetDefault(KeySegmentSize, nthprime.DefaultSegmentSize)
	v.SetDefault(KeyRegularThreshold, nthprime.DefaultRegularThreshold)
	v.SetDefault(KeyPrimeCountingThreshold, nthprime.DefaultPrimeCountingThreshold)
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyVerbose, false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".nthprime")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	v.SetEnvPrefix("NTHPRIME")
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// methodByName maps the CLI/config method string to an nthprime.Method.
var methodByName = map[string]nthprime.Method{
	"auto":           nthprime.Auto,
	"regular":        nthprime.Regular,
	"segmented":      nthprime.Segmented,
	"prime-counting": nthprime.PrimeCounting,
}

// ParseMethod resolves a method name to an nthprime.Method, defaulting
// to Auto for an unrecognized name (the core itself rejects genuinely
// invalid Method values via UnknownMethodError).
func ParseMethod(name string) nthprime.Method {
	if m, ok := methodByName[name]; ok {
		return m
	}
	return nthprime.Auto
}

// Options builds an nthprime.Options from the resolved viper values.
func Options(v *viper.Viper) *nthprime.Options {
	return &nthprime.Options{
		Method:                 ParseMethod(v.GetString(KeyMethod)),
		SegmentSize:            v.GetInt(KeySegmentSize),
		RegularThreshold:       uint64(v.GetInt64(KeyRegularThreshold)),
		PrimeCountingThreshold: uint64(v.GetInt64(KeyPrimeCountingThreshold)),
	}
}
