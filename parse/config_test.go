package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "test.config")
	require.NoError(t, os.WriteFile(fname, []byte(text), 0666))
	return fname
}

func TestReadConfig(t *testing.T) {
	text := `[test.config]  # trailing comment
# A comment line.
Count = 3
ratio = 0.5   # names are case-insensitive
Name = meow mix
Ks = 0.1, 0.2, 0.3
`
	var (
		count int64
		ratio float64
		name  string
		ks    []float64
		unset float64
	)
	vars := NewConfigVars("test.config")
	vars.Int(&count, "Count", 0)
	vars.Float(&ratio, "Ratio", 0)
	vars.String(&name, "Name", "")
	vars.Floats(&ks, "Ks", nil)
	vars.Float(&unset, "Unset", 41891)

	require.NoError(t, ReadConfig(writeConfig(t, text), vars))
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 0.5, ratio)
	assert.Equal(t, "meow mix", name)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, ks)
	assert.Equal(t, 41891.0, unset, "unset variables keep their defaults")
}

func TestReadConfigErrors(t *testing.T) {
	table := []struct {
		name, text string
	}{
		{"missing header", "Count = 3\n"},
		{"wrong header", "[wrong.config]\nCount = 3\n"},
		{"empty file", "\n# only comments\n"},
		{"not an assignment", "[test.config]\nCount\n"},
		{"empty name", "[test.config]\n= 3\n"},
		{"unknown variable", "[test.config]\nMeow = 3\n"},
		{"duplicate variable", "[test.config]\nCount = 3\ncount = 4\n"},
		{"bad int", "[test.config]\nCount = meow\n"},
		{"bad float list", "[test.config]\nKs = 0.1, meow\n"},
	}
	for _, test := range table {
		var (
			count int64
			ks    []float64
		)
		vars := NewConfigVars("test.config")
		vars.Int(&count, "Count", 0)
		vars.Floats(&ks, "Ks", nil)

		err := ReadConfig(writeConfig(t, test.text), vars)
		assert.Error(t, err, test.name)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	vars := NewConfigVars("test.config")
	assert.Error(t, ReadConfig(
		filepath.Join(t.TempDir(), "nope.config"), vars))
}
