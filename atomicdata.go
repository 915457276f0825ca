/*
 * atomicdata.go, part of gonano.
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
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
)

// Lattice constants, in A, of the elements that crystallize
// in the FCC lattice, at room temperature. Kept as strings
// so they can be parsed at any precision.
// Values from the CRC Handbook of Chemistry and Physics.
var symbolFCCConstant = map[string]string{
	"Au": "4.0782",
	"Ag": "4.0853",
	"Cu": "3.6149",
	"Pt": "3.9242",
	"Pd": "3.8907",
	"Al": "4.0495",
	"Ni": "3.524",
	"Pb": "4.9508",
	"Rh": "3.8034",
	"Ir": "3.8390",
}

// Metallic radii (12-coordinate), in A.
var symbolMetalRadius = map[string]string{
	"Au": "1.44",
	"Ag": "1.44",
	"Cu": "1.28",
	"Pt": "1.39",
	"Pd": "1.37",
	"Al": "1.43",
	"Ni": "1.24",
	"Pb": "1.75",
	"Rh": "1.34",
	"Ir": "1.36",
}

// A map for assigning mass to elements.
var symbolMass = map[string]float64{
	"Au": 196.97,
	"Ag": 107.87,
	"Cu": 63.55,
	"Pt": 195.08,
	"Pd": 106.42,
	"Al": 26.98,
	"Ni": 58.69,
	"Pb": 207.2,
	"Rh": 102.91,
	"Ir": 192.22,
}

// Symbol returns the element symbol s with the usual capitalization, so "au", "AU" and " Au"
// all give "Au".
func Symbol(s string) string {
	//Casers keep state, so they can't be shared among goroutines.
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// LatticeConstant returns the FCC lattice constant of the element symbol, in A,
// with the given precision.
func LatticeConstant(symbol string, prec uint32) (num.Real, error) {
	s, ok := symbolFCCConstant[Symbol(symbol)]
	if !ok {
		return num.Real{}, &BuildError{message: fmt.Sprintf("no FCC lattice constant for element %q", symbol), deco: []string{"LatticeConstant"}, critical: true}
	}
	r, err := num.Parse(s, prec)
	return r, errDecorate(err, "LatticeConstant")
}

// MetalRadius returns the metallic radius of the element symbol, in A, with the given precision.
func MetalRadius(symbol string, prec uint32) (num.Real, error) {
	s, ok := symbolMetalRadius[Symbol(symbol)]
	if !ok {
		return num.Real{}, &BuildError{message: fmt.Sprintf("no metallic radius for element %q", symbol), deco: []string{"MetalRadius"}, critical: true}
	}
	r, err := num.Parse(s, prec)
	return r, errDecorate(err, "MetalRadius")
}

// Mass returns the atomic mass of the element symbol.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[Symbol(symbol)]
	if !ok {
		return 0, &BuildError{message: fmt.Sprintf("no mass for element %q", symbol), deco: []string{"Mass"}, critical: true}
	}
	return m, nil
}

// Elements returns, sorted, the symbols of the elements for which FCC cells can be built
// without giving a lattice constant.
func Elements() []string {
	ret := make([]string, 0, len(symbolFCCConstant))
	for k := range symbolFCCConstant {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// FCCCell returns the FCC unit cell of the element symbol, using the tabulated lattice constant
// and metallic radius, and the given formal charge and precision.
func FCCCell(symbol string, charge int, prec uint32) (*lattice.UnitCell, error) {
	a, err := LatticeConstant(symbol, prec)
	if err != nil {
		return nil, errDecorate(err, "FCCCell")
	}
	r, err := MetalRadius(symbol, prec)
	if err != nil {
		return nil, errDecorate(err, "FCCCell")
	}
	cell, err := lattice.FCC(Symbol(symbol), a, charge, r)
	return cell, errDecorate(err, "FCCCell")
}
