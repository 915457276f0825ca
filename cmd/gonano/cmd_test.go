/*
 * cmd_test.go, part of gonano.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gonano is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nano "github.com/rmera/gonano"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShapesCommand(t *testing.T) {
	out, err := execute(t, "shapes")
	require.NoError(t, err)
	for _, s := range []string{"cube", "octahedron", "tetrahedron", "rhombic-dodecahedron"} {
		assert.Contains(t, out, s)
	}
}

func TestElementsCommand(t *testing.T) {
	out, err := execute(t, "elements")
	require.NoError(t, err)
	assert.Contains(t, out, "Au 4.0782")
	assert.Contains(t, out, "Cu 3.6149")
}

func TestCountCommand(t *testing.T) {
	out, err := execute(t, "count", "2")
	require.NoError(t, err)
	assert.Equal(t, "729\n", out)

	out, err = execute(t, "count", "3", "--step", "1")
	require.NoError(t, err)
	assert.Equal(t, "343\n", out)

	_, err = execute(t, "count", "-1")
	assert.Error(t, err)
	_, err = execute(t, "count", "10000000")
	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "au13.cif")
	stdout, err := execute(t, "build", "-q", "--radius", "2.1", "--precision", "10", "-o", out, "--summary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "13 atoms written to "+out)
	assert.Contains(t, stdout, "atoms: 13")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 13, strings.Count(string(data), "HETATM"))
	assert.Contains(t, string(data), "F m -3 m")
}

func TestBuildCommandSequentialXYZ(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cu.xyz")
	_, err := execute(t, "build", "-q", "--sequential", "-e", "Cu", "-s", "octahedron", "-r", "4", "--format", "xyz", "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "Cu")
}

func TestBuildCommandCompressed(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "pt.cif")
	stdout, err := execute(t, "build", "-q", "-e", "Pt", "-r", "2.5", "--compress", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out+".zst")
	_, err = os.Stat(out + ".zst")
	assert.NoError(t, err)
}

func TestBuildCommandConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from_config.cif")
	conf := filepath.Join(dir, "run.yaml")
	yml := "element: Ag\nshape: tetrahedron\nradius: \"6\"\nprecision: 12\noutput: " + out + "\n"
	require.NoError(t, os.WriteFile(conf, []byte(yml), 0o644))

	stdout, err := execute(t, "build", "-q", "-c", conf)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), " Ag ")

	//flags set by the user win over the file.
	out2 := filepath.Join(dir, "override.xyz")
	_, err = execute(t, "build", "-q", "-c", conf, "--format", "xyz", "-o", out2)
	require.NoError(t, err)
	_, err = os.Stat(out2)
	assert.NoError(t, err)
}

func TestBuildCommandInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "build", "-q", "-s", "dodecahedron", "-o", filepath.Join(dir, "x.cif"))
	assert.Error(t, err)
	_, err = execute(t, "build", "-q", "--format", "xyz", "--compress", "-o", filepath.Join(dir, "x.xyz"))
	assert.Error(t, err)
	_, err = execute(t, "build", "-q", "-c", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildJSONAndRadial(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "au13.cif")
	stdout, err := execute(t, "build", "-q", "-r", "2.1", "--precision", "10", "-o", out, "--json", "--bins", "4")
	require.NoError(t, err)
	var S nano.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &S))
	assert.Equal(t, 13, S.Atoms)
	assert.Equal(t, 13, S.Radial.Total())
	assert.Equal(t, []float64{1, 0, 0, 12}, S.Radial.View())

	stdout, err = execute(t, "build", "-q", "-r", "2.1", "--precision", "10", "-o", out, "--json", "--bins", "4", "--normalize")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(stdout), &S))
	assert.True(t, S.Radial.Normalized())
	assert.InDelta(t, 12.0/13, S.Radial.View()[3], 1e-9)

	summary := filepath.Join(dir, "summary.json")
	require.NoError(t, os.WriteFile(summary, []byte(stdout), 0o644))
	plot := filepath.Join(dir, "radial.png")
	_, err = execute(t, "radial", summary, "-o", plot)
	require.NoError(t, err)
	_, err = os.Stat(plot)
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(summary, []byte(`{"atoms": 3}`), 0o644))
	_, err = execute(t, "radial", summary, "-o", plot)
	assert.Error(t, err)
}
