/*
 * atom.go, part of gonano.
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
	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/shape"
	"github.com/rmera/gonano/v3"
)

// Atom is an atom of a cluster. It is created by the builders and not modified afterwards.
type Atom struct {
	Symbol string
	Pos    v3.Vec //Cartesian position, in A
	Charge int    //formal charge
	Radius num.Real
	ID     int //1-based index in the cluster
}

// Cluster is a nanoparticle: the atoms of a crystal that lie inside a shape.
type Cluster struct {
	Name  string
	Cell  *lattice.UnitCell
	Shape *shape.Shape
	Atoms []*Atom
}

// Len returns the number of atoms in the cluster.
func (C *Cluster) Len() int {
	if C == nil {
		return 0
	}
	return len(C.Atoms)
}

// Atom returns the i-th atom of the cluster. It panics if i is out of range.
func (C *Cluster) Atom(i int) *Atom {
	if C == nil {
		panic(ErrNilCluster)
	}
	if i < 0 || i >= len(C.Atoms) {
		panic(ErrAtomOutOfRange)
	}
	return C.Atoms[i]
}

// Charge returns the total formal charge of the cluster.
func (C *Cluster) Charge() int {
	if C == nil {
		return 0
	}
	q := 0
	for _, a := range C.Atoms {
		q += a.Charge
	}
	return q
}

// Symbols returns how many atoms of each element the cluster has.
func (C *Cluster) Symbols() map[string]int {
	ret := make(map[string]int)
	if C == nil {
		return ret
	}
	for _, a := range C.Atoms {
		ret[a.Symbol]++
	}
	return ret
}

// Coords returns the Cartesian coordinates of the atoms as a float64 Nx3 matrix,
// the ith row corresponding to the ith atom. It returns nil for an empty cluster.
func Coords(mol Atomer) *v3.Matrix {
	if mol.Len() == 0 {
		return nil
	}
	pos := make([]v3.Vec, mol.Len())
	for i := range pos {
		pos[i] = mol.Atom(i).Pos
	}
	return v3.FromVecs(pos)
}

// Coords returns the Cartesian coordinates of the cluster as a float64 matrix, or nil if
// the cluster is nil or empty.
func (C *Cluster) Coords() *v3.Matrix {
	return Coords(C)
}
