/*
 * config_test.go, part of gonano.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gonano/lattice"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultsAreValid(t *testing.T) {
	r := Defaults()
	require.NoError(t, r.Validate())
	cell, err := r.Cell()
	require.NoError(t, err)
	assert.Equal(t, "4.0782", cell.A.String())
	sh, err := r.BuildShape()
	require.NoError(t, err)
	assert.Equal(t, "cube", sh.Name)
}

func TestLoadYAML(t *testing.T) {
	p := write(t, "run.yaml", `
element: Cu
shape: octahedron
radius: 12.5
precision: 40
output: cu.cif
compress: true
cpus: 2
`)
	r, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "Cu", r.Element)
	assert.Equal(t, "12.5", r.Radius)
	assert.Equal(t, uint32(40), r.Precision)
	assert.True(t, r.Compress)
	assert.Equal(t, "cif", r.Format, "unset values keep their defaults")
	assert.Equal(t, 2, r.Options("cu").Cpus())
	cell, err := r.Cell()
	require.NoError(t, err)
	assert.Equal(t, uint32(40), cell.Prec())
	assert.Equal(t, lattice.KindFCC, cell.Kind)
}

func TestLoadJSONC(t *testing.T) {
	p := write(t, "run.jsonc", `{
	// silver, with a custom lattice constant
	"element": "Ag",
	"lattice_constant": "4.09",
	"atom_radius": "1.45",
	"shape": "tetrahedron",
	"radius": "15",
	"format": "xyz", /* no compression for XYZ */
	"output": "ag.xyz",
}`)
	r, err := Load(p)
	require.NoError(t, err)
	cell, err := r.Cell()
	require.NoError(t, err)
	assert.Equal(t, "4.09", cell.A.String())
	assert.Equal(t, "1.45", cell.Basis[0].Radius.String())
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"format.yaml":    "format: pdb\n",
		"element.yaml":   "element: gold\n",
		"radius.yaml":    "radius: -3\n",
		"precision.yaml": "precision: 2\n",
		"xyzzst.yaml":    "format: xyz\ncompress: true\n",
		"syntax.json":    "{\"element\": ",
		"run.toml":       "element = \"Au\"\n",
	}
	for name, content := range cases {
		_, err := Load(write(t, name, content))
		assert.Error(t, err, name)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	r, err := Load(write(t, "lower.yaml", "element: cu\n"))
	require.NoError(t, err)
	assert.Equal(t, "Cu", r.Element)
	r = Defaults()
	r.Shape = "sphere"
	_, err = r.BuildShape()
	assert.Error(t, err)
}
