/*
 * mapper.go, part of gonano.
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

package lattice

import (
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

// Mapper tells which basis atom of a unit cell, if any, sits at a given fractional coordinate.
type Mapper struct {
	cell *UnitCell
	one  num.Real
}

// NewMapper returns a Mapper for the given cell, which is validated first.
func NewMapper(cell *UnitCell) (*Mapper, error) {
	if cell == nil {
		return nil, &Error{message: "nil unit cell", deco: []string{"NewMapper"}, critical: true}
	}
	if err := cell.Validate(); err != nil {
		return nil, errDecorate(err, "NewMapper")
	}
	return &Mapper{cell: cell, one: num.One(cell.Prec())}, nil
}

// Cell returns the unit cell of the mapper.
func (M *Mapper) Cell() *UnitCell {
	return M.cell
}

// Reduce brings a fractional coordinate to [0,1) as abs(v) mod 1.
func (M *Mapper) Reduce(v num.Real) (num.Real, error) {
	r, err := v.Abs().Rem(M.one)
	if err != nil {
		return num.Real{}, errDecorate(err, "Reduce")
	}
	return r, nil
}

// Map returns the basis atom that sits at the fractional coordinates fx, fy, fz once
// they are reduced to the cell, or nil if there is none. The three coordinates, and the
// cell, must share one precision, otherwise a *num.PrecisionMismatchError is returned.
// Comparisons are exact.
func (M *Mapper) Map(fx, fy, fz num.Real) (*BasisAtom, error) {
	if err := num.CheckPrec(fx, fy, fz); err != nil {
		return nil, errDecorate(err, "Map")
	}
	if err := num.CheckPrec(M.one, fx); err != nil {
		return nil, errDecorate(err, "Map")
	}
	var red [3]num.Real
	for i, v := range []num.Real{fx, fy, fz} {
		r, err := M.Reduce(v)
		if err != nil {
			return nil, errDecorate(err, "Map")
		}
		red[i] = r
	}
	for i := range M.cell.Basis {
		o := M.cell.Basis[i].Offset
		if red[0].Cmp(o.X) == 0 && red[1].Cmp(o.Y) == 0 && red[2].Cmp(o.Z) == 0 {
			return &M.cell.Basis[i], nil
		}
	}
	return nil, nil
}

// MapVec is like Map but takes the coordinates as a vector.
func (M *Mapper) MapVec(f v3.Vec) (*BasisAtom, error) {
	return M.Map(f.X, f.Y, f.Z)
}

// Cartesian returns the Cartesian position, in A, of the fractional point f: each
// component times the corresponding edge of the cell. Only orthogonal cells are supported.
func (M *Mapper) Cartesian(f v3.Vec) v3.Vec {
	return v3.Vec{
		X: f.X.Mul(M.cell.A),
		Y: f.Y.Mul(M.cell.B),
		Z: f.Z.Mul(M.cell.C),
	}
}
