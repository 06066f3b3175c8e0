package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/suicee/symbolic-pofk/linear"
	"github.com/suicee/symbolic-pofk/logging"
	"github.com/suicee/symbolic-pofk/parse"
	"github.com/suicee/symbolic-pofk/version"
)

// Sigma8Config is the configuration of the sigma8 mode, which converts
// between the primordial amplitude As and sigma8 for a fixed cosmology.
type Sigma8Config struct {
	version string
	cosmo   linear.Cosmology
}

var _ Mode = &Sigma8Config{}

// ExampleConfig returns an example configuration file.
func (config *Sigma8Config) ExampleConfig() string {
	return fmt.Sprintf(`[sigma8.config]
# Target version of pofk. This option merely allows pofk to notice when its
# source and configuration files are not from the same version.
#
# This variable defaults to the source version if not included.
Version = %s

%s`, version.SourceVersion, exampleCosmologyText())
}

// ReadConfig reads a config file and returns an error, if applicable. An
// empty file name loads the defaults.
func (config *Sigma8Config) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("sigma8.config")
	vars.String(&config.version, "Version", version.SourceVersion)
	registerCosmology(vars, &config.cosmo)

	if fname == "" {
		return nil
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return checkVersion(config.version)
}

// Run executes the sigma8 mode.
func (config *Sigma8Config) Run(flags []string) ([]string, error) {
	fs := pflag.NewFlagSet("sigma8", pflag.ContinueOnError)
	invert := fs.Bool("invert", false,
		"Convert sigma8 to As instead of As to sigma8.")
	sigma8 := fs.Float64("sigma8", 0.8,
		"sigma8 value to convert when --invert is given.")
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}

	log := logging.Log()
	if *invert {
		as := linear.Sigma8ToAs(*sigma8, &config.cosmo)
		if math.IsNaN(as) {
			log.Warnf("sigma8: conversion is NaN; the dark energy "+
				"parameters w0 = %g, wa = %g are outside the fit's domain",
				config.cosmo.W0, config.cosmo.Wa)
		}
		return []string{fmt.Sprintf("As = %.10g", as)}, nil
	}

	s8 := linear.AsToSigma8(&config.cosmo)
	if math.IsNaN(s8) {
		log.Warnf("sigma8: conversion is NaN; the dark energy parameters "+
			"w0 = %g, wa = %g are outside the fit's domain",
			config.cosmo.W0, config.cosmo.Wa)
	}
	return []string{fmt.Sprintf("sigma8 = %.10g", s8)}, nil
}
