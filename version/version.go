/*package version controls the version*/
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the version string representing the semantic version
// number of the source code.
const SourceVersion = "1.0.0"

// Parse parses a semantic version number string and returns an error if
// the string is invalid.
func Parse(s string) (major, minor, patch int, err error) {
	toks := strings.Split(s, ".")
	if len(toks) != 3 {
		return -1, -1, -1, fmt.Errorf("Version string does not take the " +
			"form of three period-separated non-negative numbers")
	}

	ns := [3]int{}
	for i := range toks {
		ns[i], err = strconv.Atoi(toks[i])
		if err != nil || ns[i] < 0 {
			return -1, -1, -1, fmt.Errorf("Version string does not take " +
				"the form of three period-separated non-negative numbers")
		}
	}

	return ns[0], ns[1], ns[2], nil
}
