/*package parse reads the config files used by the command line modes. A
config file starts with a [name] header identifying its type, followed by
key = value assignments, one per line. '#' starts a comment, variable names
are case-insensitive, and unknown or doubly-assigned variables are errors.*/
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type varType int

const (
	intVar varType = iota
	floatVar
	stringVar
	floatsVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case floatVar:
		return "float"
	case stringVar:
		return "string"
	case floatsVar:
		return "float list"
	}
	panic("Impossible")
}

type binding struct {
	name string
	typ  varType
	ptr  interface{}
}

// set converts s and writes it through the binding's pointer, reporting
// whether the conversion succeeded.
func (b *binding) set(s string) bool {
	switch b.typ {
	case intVar:
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		*b.ptr.(*int64) = int64(n)
	case floatVar:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*b.ptr.(*float64) = f
	case stringVar:
		*b.ptr.(*string) = s
	case floatsVar:
		toks := strings.Split(s, ",")
		fs := make([]float64, 0, len(toks))
		for _, tok := range toks {
			f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				return false
			}
			fs = append(fs, f)
		}
		*b.ptr.(*[]float64) = fs
	}
	return true
}

// ConfigVars is a set of typed variable bindings for a single config file
// type. Registering a variable also sets its default value.
type ConfigVars struct {
	name     string
	bindings []binding
}

func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.add(name, intVar, ptr)
}

func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.add(name, floatVar, ptr)
}

func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.add(name, stringVar, ptr)
}

func (vars *ConfigVars) Floats(ptr *[]float64, name string, value []float64) {
	*ptr = value
	vars.add(name, floatsVar, ptr)
}

func (vars *ConfigVars) add(name string, typ varType, ptr interface{}) {
	vars.bindings = append(vars.bindings,
		binding{strings.ToLower(name), typ, ptr})
}

func (vars *ConfigVars) find(name string) *binding {
	for i := range vars.bindings {
		if vars.bindings[i].name == name {
			return &vars.bindings[i]
		}
	}
	return nil
}

// ReadConfig reads the config file fname and writes its assignments through
// the bindings in vars, returning an error if the file doesn't conform to
// the format or to the registered variables.
func ReadConfig(fname string, vars *ConfigVars) error {
	bs, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	type assignment struct {
		name, val string
		line      int
	}

	sawHeader := false
	seenLines := map[string]int{}
	assignments := []assignment{}

	for i, line := range strings.Split(string(bs), "\n") {
		if comment := strings.Index(line, "#"); comment != -1 {
			line = line[:comment]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if !sawHeader {
			if line != fmt.Sprintf("[%s]", vars.name) {
				return fmt.Errorf(
					"I expected the config file %s to have the header "+
						"[%s] at the top, but didn't find it.",
					fname, vars.name,
				)
			}
			sawHeader = true
			continue
		}

		eq := strings.Index(line, "=")
		if eq == -1 {
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"it did not take the form of a variable assignment.",
				i+1, fname,
			)
		}
		name := strings.ToLower(strings.TrimSpace(line[:eq]))
		if len(name) == 0 {
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"it did not take the form of a variable assignment.",
				i+1, fname,
			)
		}

		if prev, ok := seenLines[name]; ok {
			return fmt.Errorf(
				"Lines %d and %d of the config file %s both assign a value "+
					"to the variable '%s'.", prev, i+1, fname, name,
			)
		}
		seenLines[name] = i + 1

		assignments = append(assignments,
			assignment{name, strings.TrimSpace(line[eq+1:]), i + 1})
	}

	if !sawHeader {
		return fmt.Errorf(
			"I expected the config file %s to have the header [%s] at the "+
				"top, but didn't find it.", fname, vars.name,
		)
	}

	for _, asgn := range assignments {
		b := vars.find(asgn.name)
		if b == nil {
			return fmt.Errorf(
				"Line %d of the config file %s assigns a value to the "+
					"variable '%s', but config files of type %s don't have "+
					"that variable.", asgn.line, fname, asgn.name, vars.name,
			)
		}
		if !b.set(asgn.val) {
			a := "a"
			if b.typ == intVar {
				a = "an"
			}
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"'%s' expects values of type %s and '%s' cannot be "+
					"converted to %s %s.",
				asgn.line, fname, b.name, b.typ, asgn.val, a, b.typ,
			)
		}
	}

	return nil
}
