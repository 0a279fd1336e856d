package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  Station No  ", "station no"},
		{"Robot\nName", "robot name"},
		{"Gun Force (kN)", "gun force"},
		{"Progress [%]", "progress"},
		{"Sim\tEngineer", "sim engineer"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeHeader(tc.in), "input %q", tc.in)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"sim", "status"}, Tokenize("sim status"))
	assert.Equal(t, []string{"%", "complete"}, Tokenize("% complete"))
	assert.Empty(t, Tokenize("---"))
}

func TestJaccard(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Jaccard([]string{"sim", "status"}, []string{"status", "sim"}))
	assert.Equal(t, 0.0, Jaccard([]string{"a"}, []string{"b"}))
	assert.Equal(t, 0.0, Jaccard(nil, []string{"b"}))
	assert.InDelta(t, 1.0/3.0, Jaccard([]string{"sim", "status"}, []string{"sim", "state"}), 1e-9)
}

func TestParsePercent(t *testing.T) {
	t.Parallel()

	v, ok := ParsePercent("62.5%")
	assert.True(t, ok)
	assert.Equal(t, 62.5, v)

	v, ok = ParsePercent("0.625")
	assert.True(t, ok)
	assert.Equal(t, 62.5, v)

	v, ok = ParsePercent("62.5")
	assert.True(t, ok)
	assert.Equal(t, 62.5, v)

	_, ok = ParsePercent("n/a")
	assert.False(t, ok)

	_, ok = ParsePercent("")
	assert.False(t, ok)
}

func TestLocateHeaderRow(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"J11-UB Robot Equipment List"},
		{"", "Exported 2026-08-01"},
		{"Station", "Robot", "Model", "OEM", "Sim Status"},
		{"010", "R01", "R-2000iC/165F", "Fanuc", "In Work"},
	}
	assert.Equal(t, 2, LocateHeaderRow(rows, 10))
}

func TestLocateHeaderRow_NoPlausibleHeader(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
	}
	assert.Equal(t, -1, LocateHeaderRow(rows, 10))
}

func TestLocateHeaderRow_TieGoesToEarliest(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Station", "Robot", "Model"},
		{"Station", "Robot", "Model"},
	}
	assert.Equal(t, 0, LocateHeaderRow(rows, 10))
}
