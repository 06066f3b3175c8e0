/*pofk emulates the linear matter power spectrum P(k) of w0waCDM
cosmologies with massive neutrinos using closed-form symbolic fits.*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/suicee/symbolic-pofk/cmd"
	"github.com/suicee/symbolic-pofk/logging"
	"github.com/suicee/symbolic-pofk/version"
)

var helpStrings = map[string]string{
	"plin": `The plin mode writes a two-column table of wavenumbers and the
emulated linear power spectrum to stdout. Its flags are:
--kmin, --kmax : the range of output wavenumbers, in h/Mpc.
--nk           : the number of logarithmically spaced wavenumbers.
--a            : the scale factor to evaluate P(k) at.
Flags override the corresponding config file variables.`,

	"sigma8": `The sigma8 mode converts the primordial amplitude As of the
configured cosmology to sigma8 and prints it. Its flags are:
--invert : convert sigma8 to As instead.
--sigma8 : the sigma8 value to convert when --invert is given.`,

	"plin.config":   cmd.ModeNames["plin"].ExampleConfig(),
	"sigma8.config": cmd.ModeNames["sigma8"].ExampleConfig(),
}

var modeDescriptions = `My help modes are:
pofk help
pofk help [ plin | sigma8 | plin.config | sigma8.config ]

My computation modes are:
pofk plin   [flags] [____.config]
pofk sigma8 [flags] [____.config]

A '-v' anywhere on the command line turns on verbose logging.`

func main() {
	args, verbose := stripVerbose(os.Args)
	if err := logging.Setup(verbose); err != nil {
		fmt.Fprintf(os.Stderr, "I couldn't set up logging: %s\n",
			err.Error())
		os.Exit(1)
	}

	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./pofk help'.\n",
		)
		os.Exit(1)
	}

	switch args[1] {
	case "help":
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n",
					args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	case "version":
		fmt.Printf("pofk version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	mode, ok := cmd.ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './pofk help'\n", args[1],
		)
		os.Exit(1)
	}

	log := logging.Log()
	flags, config := splitArgs(args[2:])

	if err := mode.ReadConfig(config); err != nil {
		log.Fatalf("Error running mode %s:\n%s", args[1], err.Error())
	}

	lines, err := mode.Run(flags)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s", args[1], err.Error())
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}

// stripVerbose removes a -v/--verbose token from the argument list and
// reports whether one was present.
func stripVerbose(args []string) ([]string, bool) {
	verbose, out := false, []string{}
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			continue
		}
		out = append(out, arg)
	}
	return out, verbose
}

// splitArgs separates the mode's flags from the optional trailing config
// file name.
func splitArgs(args []string) (flags []string, config string) {
	if n := len(args); n > 0 && strings.HasSuffix(args[n-1], ".config") {
		return args[:n-1], args[n-1]
	}
	return args, ""
}
