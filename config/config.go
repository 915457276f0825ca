/*
 * config.go, part of gonano.
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

// Package config holds the settings of a gonano run, read from YAML or
// JSON-with-comments files and validated against a CUE schema.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/shape"
)

//go:embed schema.cue
var schema string

// Run contains all the settings of a build.
type Run struct {
	Element         string `yaml:"element" json:"element"`
	LatticeConstant string `yaml:"lattice_constant,omitempty" json:"lattice_constant,omitempty"` //A. Tabulated value if empty.
	Charge          int    `yaml:"charge" json:"charge"`
	AtomRadius      string `yaml:"atom_radius,omitempty" json:"atom_radius,omitempty"` //A. Tabulated metallic radius if empty.
	Shape           string `yaml:"shape" json:"shape"`
	Radius          string `yaml:"radius" json:"radius"` //A
	Precision       uint32 `yaml:"precision" json:"precision"`
	Output          string `yaml:"output" json:"output"`
	Format          string `yaml:"format" json:"format"`
	Compress        bool   `yaml:"compress" json:"compress"`
	Cpus            int    `yaml:"cpus" json:"cpus"` //0 means all the CPUs
	Bins            int    `yaml:"bins" json:"bins"`
	RadialPlot      string `yaml:"radial_plot,omitempty" json:"radial_plot,omitempty"`
	ProjectionPlot  string `yaml:"projection_plot,omitempty" json:"projection_plot,omitempty"`
}

// Defaults returns the settings used for anything a configuration file doesn't set:
// a 10 A gold cube written to nanoparticle.cif with 34 digits of precision.
func Defaults() *Run {
	return &Run{
		Element:   "Au",
		Shape:     "cube",
		Radius:    "10",
		Precision: num.DefaultPrec,
		Output:    "nanoparticle.cif",
		Format:    "cif",
		Bins:      20,
	}
}

// Load reads the settings in the file name, on top of the defaults, and validates them.
// Files ending in .yaml or .yml are read as YAML, and those ending in .json or .jsonc, as
// JSON, where comments and trailing commas are allowed.
func Load(name string) (*Run, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	r := Defaults()
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, r); err != nil {
			return nil, fmt.Errorf("config.Load: parsing %s: %w", name, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), r); err != nil {
			return nil, fmt.Errorf("config.Load: parsing %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("config.Load: unknown configuration format %q", filepath.Ext(name))
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", name, err)
	}
	return r, nil
}

// Validate puts the element symbol in its usual capitalization and checks the settings against the schema.
func (r *Run) Validate() error {
	r.Element = nano.Symbol(r.Element)
	ctx := cuecontext.New()
	s := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := s.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	v := ctx.CompileBytes(data, cue.Filename("settings"))
	if err := v.Err(); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	u := s.LookupPath(cue.ParsePath("#Run")).Unify(v)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid settings: %s", errors.Details(err, nil))
	}
	if r.Format == "xyz" && r.Compress {
		return fmt.Errorf("invalid settings: only mmCIF output can be compressed")
	}
	return nil
}

// Cell returns the unit cell described by the settings.
func (r *Run) Cell() (*lattice.UnitCell, error) {
	if r.LatticeConstant == "" && r.AtomRadius == "" {
		return nano.FCCCell(r.Element, r.Charge, r.Precision)
	}
	var a, rad num.Real
	var err error
	if r.LatticeConstant != "" {
		a, err = num.Parse(r.LatticeConstant, r.Precision)
	} else {
		a, err = nano.LatticeConstant(r.Element, r.Precision)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Cell: %w", err)
	}
	if r.AtomRadius != "" {
		rad, err = num.Parse(r.AtomRadius, r.Precision)
	} else if rad, err = nano.MetalRadius(r.Element, r.Precision); err != nil {
		//an unknown element with an explicit lattice constant is fine, the radius is not essential.
		rad, err = num.Zero(r.Precision), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Cell: %w", err)
	}
	return lattice.FCC(nano.Symbol(r.Element), a, r.Charge, rad)
}

// BuildShape returns the shape described by the settings.
func (r *Run) BuildShape() (*shape.Shape, error) {
	rad, err := num.Parse(r.Radius, r.Precision)
	if err != nil {
		return nil, fmt.Errorf("config.BuildShape: %w", err)
	}
	return shape.Build(r.Shape, rad)
}

// Options returns builder options with the CPUs set in r, and the given cluster name.
func (r *Run) Options(name string) *nano.Options {
	o := nano.DefaultOptions()
	o.Cpus(r.Cpus)
	o.Name(name)
	return o
}
