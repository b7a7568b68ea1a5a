package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, file, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
}

func TestPlan(t *testing.T) {
	var (
		dir = t.TempDir()
		fst = filepath.Join(dir, "north.yml")
		snd = filepath.Join(dir, "south.yml")
	)
	writeFile(t, fst, "title: Sales\nfile: north.csv\n")
	writeFile(t, snd, "title: Sales\nfile: south.csv\n")

	list, err := plan([]string{fst, snd})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, filepath.Join(dir, "north.svg"), list[0].Output)
	assert.Equal(t, filepath.Join(dir, "south.svg"), list[1].Output)

	outputDir = filepath.Join(dir, "out")
	t.Cleanup(func() {
		outputDir = ""
	})
	_, err = plan([]string{fst, snd})
	assert.ErrorIs(t, err, errDuplicate)
}

func TestDrawFile(t *testing.T) {
	var (
		dir  = t.TempDir()
		file = filepath.Join(dir, "chart.yml")
	)
	writeFile(t, file, "file: data.csv\n")
	writeFile(t, filepath.Join(dir, "data.csv"), "month,total\nJan,3\nFeb,4\n")

	list, err := plan([]string{file})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, drawFile(t.Context(), list[0]))

	buf, err := os.ReadFile(filepath.Join(dir, "chart.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "<svg")
}
