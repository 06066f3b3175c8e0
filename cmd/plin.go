package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"

	"github.com/suicee/symbolic-pofk/linear"
	"github.com/suicee/symbolic-pofk/logging"
	"github.com/suicee/symbolic-pofk/parse"
	"github.com/suicee/symbolic-pofk/version"
)

// PLinConfig is the configuration of the plin mode, which writes a table of
// the emulated linear power spectrum to stdout.
type PLinConfig struct {
	version string
	cosmo   linear.Cosmology

	scaleFactor float64
	kMin, kMax  float64
	nK          int64
}

var _ Mode = &PLinConfig{}

// ExampleConfig returns an example configuration file.
func (config *PLinConfig) ExampleConfig() string {
	return fmt.Sprintf(`[plin.config]
# Target version of pofk. This option merely allows pofk to notice when its
# source and configuration files are not from the same version.
#
# This variable defaults to the source version if not included.
Version = %s

%s

# The scale factor to evaluate P(k) at. 1 is the present day.
ScaleFactor = 1

# The output table covers NK logarithmically spaced wavenumbers between
# KMin and KMax, in h/Mpc.
KMin = 0.001
KMax = 10
NK = 200`, version.SourceVersion, exampleCosmologyText())
}

// ReadConfig reads a config file and returns an error, if applicable. An
// empty file name loads the defaults.
func (config *PLinConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("plin.config")
	vars.String(&config.version, "Version", version.SourceVersion)
	registerCosmology(vars, &config.cosmo)
	vars.Float(&config.scaleFactor, "ScaleFactor", 1)
	vars.Float(&config.kMin, "KMin", 0.001)
	vars.Float(&config.kMax, "KMax", 10)
	vars.Int(&config.nK, "NK", 200)

	if fname == "" {
		return nil
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return config.validate()
}

// validate checks that all the user-set fields of PLinConfig are sensible.
func (config *PLinConfig) validate() error {
	if err := checkVersion(config.version); err != nil {
		return err
	}
	if config.kMin <= 0 {
		return fmt.Errorf("The 'KMin' variable is set to %g, but "+
			"wavenumbers must be positive.", config.kMin)
	}
	if config.kMax <= config.kMin {
		return fmt.Errorf("The 'KMax' variable is set to %g, which isn't "+
			"larger than KMin = %g.", config.kMax, config.kMin)
	}
	if config.nK < 2 {
		return fmt.Errorf("The 'NK' variable is set to %d, but the output "+
			"table needs at least 2 rows.", config.nK)
	}
	if config.scaleFactor <= 0 {
		return fmt.Errorf("The 'ScaleFactor' variable is set to %g, but "+
			"scale factors must be positive.", config.scaleFactor)
	}
	return nil
}

// Run executes the plin mode.
func (config *PLinConfig) Run(flags []string) ([]string, error) {
	fs := pflag.NewFlagSet("plin", pflag.ContinueOnError)
	kMin := fs.Float64("kmin", config.kMin,
		"Smallest output wavenumber, in h/Mpc.")
	kMax := fs.Float64("kmax", config.kMax,
		"Largest output wavenumber, in h/Mpc.")
	nK := fs.Int64("nk", config.nK,
		"Number of logarithmically spaced output wavenumbers.")
	a := fs.Float64("a", config.scaleFactor,
		"Scale factor to evaluate P(k) at.")
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}
	config.kMin, config.kMax, config.nK = *kMin, *kMax, *nK
	config.scaleFactor = *a
	if err := config.validate(); err != nil {
		return nil, err
	}

	log := logging.Log()
	log.Infof("plin: %d wavenumbers in [%g, %g] h/Mpc at a = %g",
		config.nK, config.kMin, config.kMax, config.scaleFactor)

	k := floats.LogSpan(make([]float64, config.nK), config.kMin, config.kMax)
	pk := linear.PLinAt(k, &config.cosmo, config.scaleFactor)

	lines := make([]string, 0, len(k)+1)
	lines = append(lines, "# k [h/Mpc] P(k) [(Mpc/h)^3]")
	for i := range k {
		lines = append(lines, fmt.Sprintf("%.10e %.10e", k[i], pk[i]))
	}

	log.Debugf("plin: done (%s)", logging.MemString())
	return lines, nil
}
