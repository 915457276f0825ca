/*
 * cell.go, part of gonano.
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
	"fmt"
	"strings"

	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

// Kind identifies a type of Bravais lattice.
type Kind int

const (
	KindUnknown Kind = iota
	KindFCC          //face-centered cubic
)

func (k Kind) String() string {
	switch k {
	case KindFCC:
		return "fcc"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind with the given name (case insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcc", "face-centered-cubic", "cf":
		return KindFCC, nil
	default:
		return KindUnknown, &Error{message: fmt.Sprintf("unsupported lattice kind %q", s), deco: []string{"ParseKind"}, critical: true}
	}
}

// Step returns the grid step, in fractional units, needed to visit all the basis positions
// of a cell of kind k, with the given precision.
func (k Kind) Step(prec uint32) (num.Real, error) {
	switch k {
	case KindFCC:
		return num.MustParse("0.5", prec), nil
	default:
		return num.Real{}, &Error{message: fmt.Sprintf("unsupported lattice kind %s", k), deco: []string{"Step"}, critical: true}
	}
}

// BasisAtom is an atom of the unit cell basis.
type BasisAtom struct {
	Symbol string
	Offset v3.Vec //fractional coordinates within the cell, in [0,1)
	Charge int    //formal charge
	Radius num.Real
}

// Prec returns the precision of the fractional offset of the atom.
func (B *BasisAtom) Prec() uint32 {
	return B.Offset.Prec()
}

func (B *BasisAtom) String() string {
	return fmt.Sprintf("%s %s %d", B.Symbol, B.Offset, B.Charge)
}

// UnitCell describes the cell of a crystal: its edges, angles, space group and the basis
// of atoms it contains. It is built once and not modified afterwards.
type UnitCell struct {
	A, B, C            num.Real //edge lengths, in A
	Alpha, Beta, Gamma num.Real //angles, in degrees
	SpaceGroup         string   //Hermann-Mauguin symbol
	Basis              []BasisAtom
	Kind               Kind
}

// FCC returns a face-centered cubic cell with lattice constant a, and a 4-atom basis
// of the element symbol with the given formal charge and atomic radius. All the
// numbers in the cell take the precision of a.
func FCC(symbol string, a num.Real, charge int, radius num.Real) (*UnitCell, error) {
	prec := a.Prec()
	if a.Sign() <= 0 {
		return nil, &Error{message: fmt.Sprintf("non-positive lattice constant %s", a), deco: []string{"FCC"}, critical: true}
	}
	offsets := [][3]string{
		{"0", "0", "0"},
		{"0.5", "0.5", "0"},
		{"0.5", "0", "0.5"},
		{"0", "0.5", "0.5"},
	}
	r := radius.WithPrec(prec)
	basis := make([]BasisAtom, 0, len(offsets))
	for _, o := range offsets {
		basis = append(basis, BasisAtom{
			Symbol: symbol,
			Offset: v3.MustParseVec(o[0], o[1], o[2], prec),
			Charge: charge,
			Radius: r,
		})
	}
	right := num.FromInt(90, prec)
	return &UnitCell{
		A:          a,
		B:          a,
		C:          a,
		Alpha:      right,
		Beta:       right,
		Gamma:      right,
		SpaceGroup: "F m -3 m",
		Basis:      basis,
		Kind:       KindFCC,
	}, nil
}

// Prec returns the precision of the cell.
func (U *UnitCell) Prec() uint32 {
	return U.A.Prec()
}

// Edge returns the length of the i-th edge of the cell (0 for a, 1 for b, 2 for c).
func (U *UnitCell) Edge(i int) num.Real {
	switch i {
	case 0:
		return U.A
	case 1:
		return U.B
	case 2:
		return U.C
	default:
		panic(ErrEdgeIndex)
	}
}

// MinEdge returns the shortest edge of the cell.
func (U *UnitCell) MinEdge() num.Real {
	m := U.A
	for _, e := range []num.Real{U.B, U.C} {
		if e.Cmp(m) < 0 {
			m = e
		}
	}
	return m
}

// Validate checks that the cell can be used to build a structure: a supported kind,
// positive edges, a non-empty basis and a single precision everywhere.
func (U *UnitCell) Validate() error {
	if U.Kind != KindFCC {
		return &Error{message: fmt.Sprintf("unsupported lattice kind %s", U.Kind), deco: []string{"Validate"}, critical: true}
	}
	if len(U.Basis) == 0 {
		return &Error{message: "empty basis", deco: []string{"Validate"}, critical: true}
	}
	reals := []num.Real{U.A, U.B, U.C, U.Alpha, U.Beta, U.Gamma}
	for _, b := range U.Basis {
		reals = append(reals, b.Offset.X, b.Offset.Y, b.Offset.Z)
	}
	if err := num.CheckPrec(reals...); err != nil {
		return errDecorate(err, "Validate")
	}
	for i := 0; i < 3; i++ {
		if U.Edge(i).Sign() <= 0 {
			return &Error{message: fmt.Sprintf("non-positive edge %d: %s", i, U.Edge(i)), deco: []string{"Validate"}, critical: true}
		}
	}
	return nil
}
