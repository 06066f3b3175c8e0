/*package cmd contains code for running pofk in its various command line
modes */
package cmd

import (
	"fmt"

	"github.com/suicee/symbolic-pofk/linear"
	"github.com/suicee/symbolic-pofk/parse"
	"github.com/suicee/symbolic-pofk/version"
)

var ModeNames map[string]Mode = map[string]Mode{
	"plin":   &PLinConfig{},
	"sigma8": &Sigma8Config{},
}

// Mode represents the interface used by the main binary when interacting
// with a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and stores its contents
	// within the Mode. An empty file name loads the defaults.
	ReadConfig(fname string) error
	// ExampleConfig returns the text of an example config file of this mode.
	ExampleConfig() string
	// Run executes the mode. It takes a list of tokenized command line
	// flags and returns a slice of lines that should be written to stdout
	// along with an error if one occurs.
	Run(flags []string) ([]string, error)
}

// registerCosmology adds the cosmological parameter variables shared by
// every mode's config file to vars, defaulting to the fiducial cosmology.
func registerCosmology(vars *parse.ConfigVars, c *linear.Cosmology) {
	def := linear.Example()
	vars.Float(&c.As, "As", def.As)
	vars.Float(&c.Om, "OmegaM", def.Om)
	vars.Float(&c.Ob, "OmegaB", def.Ob)
	vars.Float(&c.H, "H100", def.H)
	vars.Float(&c.Ns, "Ns", def.Ns)
	vars.Float(&c.Mnu, "Mnu", def.Mnu)
	vars.Float(&c.W0, "W0", def.W0)
	vars.Float(&c.Wa, "Wa", def.Wa)
}

// checkVersion returns an error if a config file's Version variable doesn't
// match the version of the source.
func checkVersion(v string) error {
	major, minor, patch, err := version.Parse(v)
	if err != nil {
		return fmt.Errorf("I couldn't parse the 'Version' variable: %s",
			err.Error())
	}
	smajor, sminor, spatch, _ := version.Parse(version.SourceVersion)
	if major != smajor || minor != sminor || patch != spatch {
		return fmt.Errorf("The 'Version' variable is set to %s, but the "+
			"version of the source is %s", v, version.SourceVersion)
	}
	return nil
}

// exampleCosmologyText is the shared block of an example config file which
// describes the cosmological parameter variables.
func exampleCosmologyText() string {
	def := linear.Example()
	return fmt.Sprintf(`# Cosmological parameters. Any variable left out
# defaults to the fiducial value shown here.
#
# As is 10^9 times the amplitude of the primordial power spectrum.
As = %g
# OmegaM and OmegaB are the z=0 total matter and baryon density parameters.
OmegaM = %g
OmegaB = %g
# H100 is H0 divided by 100 km/s/Mpc.
H100 = %g
# Ns is the spectral tilt of the primordial power spectrum.
Ns = %g
# Mnu is the sum of the neutrino masses in eV.
Mnu = %g
# W0 and Wa parameterize the dark energy equation of state,
# w(a) = w0 + wa*(1 - a).
W0 = %g
Wa = %g`,
		def.As, def.Om, def.Ob, def.H, def.Ns, def.Mnu, def.W0, def.Wa)
}
