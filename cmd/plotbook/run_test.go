package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/plotbook/internal/fsutil"
	"github.com/banshee-data/plotbook/internal/timeutil"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	mem := fsutil.NewMemoryFileSystem()
	require.NoError(t, run([]string{"-list"}, &out, mem, timeutil.NewMockClock(testTime)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 35)
	assert.True(t, strings.HasPrefix(lines[0], "camera_rotation"))
	assert.Empty(t, mem.Files())
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &out, fsutil.NewMemoryFileSystem(), timeutil.RealClock{}))
	assert.True(t, strings.HasPrefix(out.String(), "plotbook "))
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-h"}, &out, fsutil.NewMemoryFileSystem(), timeutil.RealClock{})
	assert.Equal(t, flag.ErrHelp, err)
	assert.Contains(t, out.String(), "-only")
}

func TestRun_RendersSelection(t *testing.T) {
	mem := fsutil.NewMemoryFileSystem()
	args := []string{
		"-out", "plots",
		"-only", "t0012_legend, t0032_multi_figure,t0046_bar_color",
		"-html",
		"-seed", "3",
	}
	require.NoError(t, run(args, &bytes.Buffer{}, mem, timeutil.NewMockClock(testTime)))

	want := []string{
		"plots/manifest.json",
		"plots/t0012_legend.png",
		"plots/t0032_multi_figure-1.png",
		"plots/t0032_multi_figure-2.png",
		"plots/t0046_bar_color.html",
		"plots/t0046_bar_color.png",
	}
	if diff := cmp.Diff(want, mem.Files()); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	data, err := mem.ReadFile("plots/manifest.json")
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	_, err = uuid.Parse(m.RunID)
	assert.NoError(t, err)
	assert.True(t, m.Created.Equal(testTime))
	assert.Equal(t, int64(3), m.Seed)
	assert.Len(t, m.Files, 5)

	page, err := mem.ReadFile("plots/t0046_bar_color.html")
	require.NoError(t, err)
	assert.Contains(t, string(page), "Fruit supply by kind and color")
}

func TestRun_UnknownExample(t *testing.T) {
	err := run([]string{"-only", "nope"}, &bytes.Buffer{}, fsutil.NewMemoryFileSystem(), timeutil.RealClock{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRun_MissingImageFails(t *testing.T) {
	args := []string{"-only", "t0036_image_lum", "-image", filepath.Join(t.TempDir(), "none.png")}
	err := run(args, &bytes.Buffer{}, fsutil.NewMemoryFileSystem(), timeutil.RealClock{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), err.Error())
}

func TestParseFlags_ConfigAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output_dir": "from-file", "dpi": 72, "seed": 5}`), 0644))

	opts, err := parseFlags([]string{"-config", path, "-seed", "9"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "from-file", opts.cfg.GetOutputDir())
	assert.Equal(t, 72, opts.cfg.GetDPI())
	assert.Equal(t, int64(9), opts.cfg.GetSeed())
	assert.False(t, opts.cfg.GetHTML())
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional", []string{"extra"}},
		{"empty out", []string{"-out", ""}},
		{"bad config ext", []string{"-config", "render.yaml"}},
		{"unknown flag", []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestFigureNames(t *testing.T) {
	assert.Equal(t, []string{"a.png"}, figureNames("a", 1))
	assert.Equal(t, []string{"b-1.png", "b-2.png"}, figureNames("b", 2))
}
