package names

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_SingleLetterUnchanged(t *testing.T) {
	set := NewSet()
	got := Normalize("x", set)
	assert.Equal(t, "x", got.Name)
	assert.Empty(t, got.Err)
}

func TestNormalize_ImplicitSubscript(t *testing.T) {
	set := NewSet()
	got := Normalize("xyz", set)
	assert.Equal(t, "x_yz", got.Name)
}

func TestNormalize_NonSubscriptingSetReturnedVerbatim(t *testing.T) {
	set := NewSet([]string{"sin", "cos"})
	got := Normalize("sin", set)
	assert.Equal(t, "sin", got.Name)
}

func TestNormalize_ReservedIdentifiersNeverSubscripted(t *testing.T) {
	set := NewSet()
	for _, reserved := range []string{"else", "true", "false", "index", "dt"} {
		got := Normalize(reserved, set)
		assert.Equal(t, reserved, got.Name, reserved)
	}
}

func TestNormalize_FragileBuiltinsNeverSubscripted(t *testing.T) {
	set := NewSet()
	got := Normalize("argmin", set)
	assert.Equal(t, "argmin", got.Name)
}

func TestNormalize_ExplicitSubscriptPreserved(t *testing.T) {
	set := NewSet([]string{"sin"})
	got := Normalize("sin_2", set)
	assert.Equal(t, "sin_2", got.Name)
}

func TestNormalize_TrailingUnderscoreIsAnError(t *testing.T) {
	set := NewSet()
	got := Normalize("a_", set)
	assert.Equal(t, "Cannot end with '_'", got.Err)
}

func TestNormalize_DigitBeforeUnderscoreIsAnError(t *testing.T) {
	set := NewSet()
	got := Normalize("a1_b", set)
	assert.Equal(t, "Digits are not allowed before '_'", got.Err)
}

func TestNormalize_MoreThanOneUnderscoreIsAnError(t *testing.T) {
	set := NewSet()
	got := Normalize("a_b_c", set)
	assert.Equal(t, "error", got.Name)
	assert.NotEmpty(t, got.Err)
}

func TestLoadSet_ReadsYAMLNameTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.yaml")
	err := os.WriteFile(path, []byte("operators:\n  - sin\n  - cos\ncommands:\n  - mod\n"), 0o644)
	assert.NoError(t, err)

	set, err := LoadSet(path)
	assert.NoError(t, err)
	assert.True(t, set.Contains("sin"))
	assert.True(t, set.Contains("mod"))
	assert.False(t, set.Contains("tan"))
}

func TestLoadSet_MissingFileReturnsError(t *testing.T) {
	_, err := LoadSet(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
