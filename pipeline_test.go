/*
 * pipeline_test.go, part of gonano.
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

package nano

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/shape"
)

const prec = num.DefaultPrec

func goldCell(Te *testing.T) *lattice.UnitCell {
	Te.Helper()
	cell, err := FCCCell("Au", 0, prec)
	if err != nil {
		Te.Fatal(err)
	}
	return cell
}

// au13 is the 13-atom cuboctahedron that an FCC gold cell gives inside a small cube.
func au13(Te *testing.T) *Cluster {
	Te.Helper()
	sh, err := shape.Build("cube", num.MustParse("2.1", prec))
	if err != nil {
		Te.Fatal(err)
	}
	cl, err := Build(context.Background(), goldCell(Te), sh, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return cl
}

func TestBuildSmallCube(Te *testing.T) {
	cl := au13(Te)
	if cl.Len() != 13 {
		Te.Fatalf("Expected 13 atoms, got %d", cl.Len())
	}
	for i, a := range cl.Atoms {
		if a.ID != i+1 || a.Symbol != "Au" {
			Te.Errorf("Wrong atom %d: ID %d, symbol %s", i, a.ID, a.Symbol)
		}
	}
	if !cl.Atom(6).Pos.IsZero() {
		Te.Errorf("The central atom should be at the origin, it is at %s", cl.Atom(6).Pos)
	}
	if s := cl.Symbols(); len(s) != 1 || s["Au"] != 13 {
		Te.Errorf("Wrong symbols %v", s)
	}
	if cl.Charge() != 0 {
		Te.Errorf("Wrong charge %d", cl.Charge())
	}
}

func TestNilCluster(Te *testing.T) {
	var cl *Cluster
	if cl.Len() != 0 || cl.Charge() != 0 || len(cl.Symbols()) != 0 || cl.Coords() != nil {
		Te.Error("A nil cluster should behave as an empty one")
	}
	defer func() {
		if r := recover(); r != ErrNilCluster {
			Te.Errorf("Expected ErrNilCluster panic, got %v", r)
		}
	}()
	cl.Atom(0)
}

func TestBuildCubeCount(Te *testing.T) {
	//a cube with half-edge 2a contains all the FCC sites of a 4x4x4 block of cells,
	//faces, edges and corners included.
	cell := goldCell(Te)
	sh, err := shape.Build("cube", cell.A.Mul(num.FromInt(2, prec)))
	if err != nil {
		Te.Fatal(err)
	}
	cl, err := Build(context.Background(), cell, sh, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if cl.Len() != 365 {
		Te.Errorf("Expected 365 atoms, got %d", cl.Len())
	}
	for _, a := range cl.Atoms {
		if !sh.Contains(a.Pos) {
			Te.Errorf("Atom %d at %s outside the shape", a.ID, a.Pos)
		}
	}
}

func TestBuildConcMatchesBuild(Te *testing.T) {
	cell := goldCell(Te)
	for _, name := range shape.Names() {
		sh, err := shape.Build(name, num.MustParse("9.5", prec))
		if err != nil {
			Te.Fatal(err)
		}
		seq, err := Build(context.Background(), cell, sh, nil)
		if err != nil {
			Te.Fatal(err)
		}
		opts := DefaultOptions()
		opts.Cpus(4)
		conc, err := BuildConc(context.Background(), cell, sh, opts)
		if err != nil {
			Te.Fatal(err)
		}
		if seq.Len() != conc.Len() {
			Te.Fatalf("Shape %s: %d atoms in the sequential build, %d in the concurrent one", name, seq.Len(), conc.Len())
		}
		fmt.Println(name, seq.Len(), "atoms")
		for i := range seq.Atoms {
			a, b := seq.Atoms[i], conc.Atoms[i]
			if a.ID != b.ID || !a.Pos.Equal(b.Pos) {
				Te.Errorf("Shape %s atom %d: %d %s vs %d %s", name, i, a.ID, a.Pos, b.ID, b.Pos)
			}
		}
	}
}

func TestBuildCancelled(Te *testing.T) {
	cell := goldCell(Te)
	sh, err := shape.Build("octahedron", num.MustParse("12", prec))
	if err != nil {
		Te.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = Build(ctx, cell, sh, nil); !errors.Is(err, context.Canceled) {
		Te.Errorf("Build: expected context.Canceled, got %v", err)
	}
	if _, err = BuildConc(ctx, cell, sh, nil); !errors.Is(err, context.Canceled) {
		Te.Errorf("BuildConc: expected context.Canceled, got %v", err)
	}
}

func TestBuildPrecisionMismatch(Te *testing.T) {
	cell := goldCell(Te)
	sh, err := shape.Build("cube", num.MustParse("5", 20))
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Build(context.Background(), cell, sh, nil)
	var pm *num.PrecisionMismatchError
	if !errors.As(err, &pm) {
		Te.Errorf("Expected PrecisionMismatchError, got %v", err)
	}
	if _, err = Build(context.Background(), nil, sh, nil); err == nil {
		Te.Error("Nil cell accepted")
	}
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	if o.Cpus() < 1 {
		Te.Errorf("Default CPUs: %d", o.Cpus())
	}
	if o.Cpus(3) != 3 || o.Cpus(-1) != 3 {
		Te.Error("Cpus setter failed")
	}
	if o.Name() != "gonano" || o.Name("np") != "np" {
		Te.Error("Name getter/setter failed")
	}
	if o.Logger() == nil {
		Te.Error("Nil default logger")
	}
}

func TestAtomicData(Te *testing.T) {
	a, err := LatticeConstant("Cu", prec)
	if err != nil {
		Te.Fatal(err)
	}
	if a.String() != "3.6149" {
		Te.Errorf("Wrong Cu lattice constant %s", a)
	}
	if _, err = LatticeConstant("Fe", prec); err == nil {
		Te.Error("Lattice constant for Fe")
	}
	if _, err = MetalRadius("Xx", prec); err == nil {
		Te.Error("Metallic radius for Xx")
	}
	for _, e := range Elements() {
		if _, err := FCCCell(e, 0, prec); err != nil {
			Te.Error(e, err)
		}
		if _, err := Mass(e); err != nil {
			Te.Error(e, err)
		}
	}
	for _, s := range []string{"ag", "AG", " Ag"} {
		if Symbol(s) != "Ag" {
			Te.Errorf("Symbol(%q) = %q", s, Symbol(s))
		}
	}
	cell, err := FCCCell("pt", 1, prec)
	if err != nil {
		Te.Fatal(err)
	}
	if cell.Basis[0].Symbol != "Pt" {
		Te.Errorf("Wrong basis symbol %s", cell.Basis[0].Symbol)
	}
}
