/*
 * geometric.go, part of gonano.
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
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/gonano/histo"
	"github.com/rmera/gonano/v3"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// CenterOfMass returns the center of mass of the atoms represented by the coordinates in geometry
// and the masses in mass, and an error. If mass is nil, it calculates the geometric center
func CenterOfMass(geometry *v3.Matrix, mass []float64) (r3.Vec, error) {
	if geometry == nil {
		return r3.Vec{}, fmt.Errorf("CenterOfMass: nil matrix to get the center of mass")
	}
	if mass != nil && len(mass) != geometry.NVecs() {
		return r3.Vec{}, fmt.Errorf("CenterOfMass: %d masses for %d atoms", len(mass), geometry.NVecs())
	}
	return r3.Vec{
		X: stat.Mean(geometry.Col(0), mass),
		Y: stat.Mean(geometry.Col(1), mass),
		Z: stat.Mean(geometry.Col(2), mass),
	}, nil
}

// Distances returns the distance from each vector in geometry to center.
func Distances(geometry *v3.Matrix, center r3.Vec) []float64 {
	ret := make([]float64, geometry.NVecs())
	for i := range ret {
		ret[i] = r3.Norm(r3.Sub(geometry.Vec(i), center))
	}
	return ret
}

// RadiusOfGyration returns the mass-weighted root mean square distance of the atoms in
// geometry to their center of mass. If mass is nil, all masses are taken as 1.
func RadiusOfGyration(geometry *v3.Matrix, mass []float64) (float64, error) {
	c, err := CenterOfMass(geometry, mass)
	if err != nil {
		return 0, fmt.Errorf("RadiusOfGyration: %w", err)
	}
	d := Distances(geometry, c)
	floats.Mul(d, d)
	return math.Sqrt(stat.Mean(d, mass)), nil
}

// MomentTensor returns the moment tensor for a matrix A of coordinates and a
// slice mass with the respective masses. If mass is nil, all masses are taken as 1.
func MomentTensor(A *v3.Matrix, mass []float64) (*mat.SymDense, error) {
	c, err := CenterOfMass(A, mass)
	if err != nil {
		return nil, fmt.Errorf("MomentTensor: %w", err)
	}
	row, err := v3.NewMatrix([]float64{c.X, c.Y, c.Z})
	if err != nil {
		return nil, fmt.Errorf("MomentTensor: %w", err)
	}
	centered := v3.Zeros(A.NVecs())
	centered.SubVec(A, row)
	if mass != nil {
		for i, m := range mass {
			centered.SetVec(i, r3.Scale(math.Sqrt(m), centered.Vec(i)))
		}
	}
	moment := mat.NewSymDense(3, nil)
	moment.SymOuterK(1, centered.T())
	return moment, nil
}

// Rhos returns the semiaxes of the ellipsoid of inertia given the eigenvalues of the moment tensor,
// from the largest to the smallest.
func Rhos(evals []float64) ([]float64, error) {
	if len(evals) != 3 {
		return nil, fmt.Errorf("Rhos: 3 eigenvalues needed, got %d", len(evals))
	}
	for _, v := range evals {
		if v <= appzero {
			return nil, fmt.Errorf("Rhos: cluster collapsed to a line or a point")
		}
	}
	rhos := []float64{1 / math.Sqrt(evals[0]), 1 / math.Sqrt(evals[1]), 1 / math.Sqrt(evals[2])}
	sort.Sort(sort.Reverse(sort.Float64Slice(rhos)))
	return rhos, nil
}

// RhoShapeIndexes Get shape indices based on the axes of the ellipsoid of inertia.
// Based on the work of Taylor et al., .(1983), J Mol Graph, 1, 30
// The first is the linear (prolate) distortion, the second the circular (oblate) one,
// both in percent.
func RhoShapeIndexes(evals []float64) (float64, float64, error) {
	rhos, err := Rhos(evals)
	if err != nil {
		return 0, 0, fmt.Errorf("RhoShapeIndexes: %w", err)
	}
	linear := (1 - (rhos[1] / rhos[0])) * 100   //Prolate
	circular := (1 - (rhos[2] / rhos[0])) * 100 //Oblate
	return linear, circular, nil
}

// Summary contains geometric descriptors of a cluster.
type Summary struct {
	Atoms     int
	Symbols   map[string]int
	Centroid  r3.Vec
	MaxRadius float64 //largest distance from an atom to the centroid
	Rg        float64 //radius of gyration (mass weighted)
	Linear    float64 //prolate distortion, percent. NaN if undefined.
	Circular  float64 //oblate distortion, percent. NaN if undefined.
	Radial    *histo.Data
}

func (S *Summary) String() string {
	return fmt.Sprintf("atoms: %d %v\ncentroid: (%.3f, %.3f, %.3f) A\nmax radius: %.3f A\nradius of gyration: %.3f A\ndistortion: %.2f%% linear %.2f%% circular",
		S.Atoms, S.Symbols, S.Centroid.X, S.Centroid.Y, S.Centroid.Z, S.MaxRadius, S.Rg, S.Linear, S.Circular)
}

type jsonSummary struct {
	Atoms     int            `json:"atoms"`
	Symbols   map[string]int `json:"symbols"`
	Centroid  [3]float64     `json:"centroid"`
	MaxRadius float64        `json:"max_radius"`
	Rg        float64        `json:"radius_of_gyration"`
	Linear    *float64       `json:"linear_distortion,omitempty"`
	Circular  *float64       `json:"circular_distortion,omitempty"`
	Radial    *histo.Data    `json:"radial"`
}

// MarshalJSON encodes the summary. The distortions are left out when they are not defined
// (flat or tiny clusters), as JSON has no NaN.
func (S *Summary) MarshalJSON() ([]byte, error) {
	j := jsonSummary{
		Atoms:     S.Atoms,
		Symbols:   S.Symbols,
		Centroid:  [3]float64{S.Centroid.X, S.Centroid.Y, S.Centroid.Z},
		MaxRadius: S.MaxRadius,
		Rg:        S.Rg,
		Radial:    S.Radial,
	}
	if !math.IsNaN(S.Linear) && !math.IsNaN(S.Circular) {
		j.Linear, j.Circular = &S.Linear, &S.Circular
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes a summary written by MarshalJSON. Missing distortions become NaN.
func (S *Summary) UnmarshalJSON(b []byte) error {
	var j jsonSummary
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if j.Radial == nil {
		return fmt.Errorf("gonano: summary without radial distribution")
	}
	*S = Summary{
		Atoms:     j.Atoms,
		Symbols:   j.Symbols,
		Centroid:  r3.Vec{X: j.Centroid[0], Y: j.Centroid[1], Z: j.Centroid[2]},
		MaxRadius: j.MaxRadius,
		Rg:        j.Rg,
		Linear:    math.NaN(),
		Circular:  math.NaN(),
		Radial:    j.Radial,
	}
	if j.Linear != nil && j.Circular != nil {
		S.Linear, S.Circular = *j.Linear, *j.Circular
	}
	return nil
}

// Summarize returns the geometric descriptors of cl. The radial histogram, of the distances
// from each atom to the centroid, has the given number of bins, from 0 to the radius of the cluster.
func Summarize(cl *Cluster, bins int) (*Summary, error) {
	if cl.Len() == 0 {
		return nil, &BuildError{message: "can't summarize an empty cluster", deco: []string{"Summarize"}}
	}
	if bins < 1 {
		bins = 1
	}
	coords := cl.Coords()
	masses := make([]float64, cl.Len())
	for i, a := range cl.Atoms {
		m, err := Mass(a.Symbol)
		if err != nil {
			m = 1 //unknown elements just get a unit mass
		}
		masses[i] = m
	}
	S := &Summary{Atoms: cl.Len(), Symbols: cl.Symbols()}
	var err error
	if S.Centroid, err = CenterOfMass(coords, nil); err != nil {
		return nil, errDecorate(err, "Summarize")
	}
	d := Distances(coords, S.Centroid)
	S.MaxRadius = floats.Max(d)
	if S.Rg, err = RadiusOfGyration(coords, masses); err != nil {
		return nil, errDecorate(err, "Summarize")
	}
	//the last divider must be strictly larger than the largest distance.
	S.Radial = histo.NewData(histo.Dividers(0, S.MaxRadius+appzero, bins), d)
	if cl.Len() < 4 {
		S.Linear, S.Circular = math.NaN(), math.NaN()
		return S, nil
	}
	moment, err := MomentTensor(coords, masses)
	if err != nil {
		return nil, errDecorate(err, "Summarize")
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(moment, false); !ok {
		return nil, &BuildError{message: "couldn't diagonalize the moment tensor", deco: []string{"Summarize"}}
	}
	//flat clusters have no ellipsoid of inertia, but the rest of the summary is still useful.
	if S.Linear, S.Circular, err = RhoShapeIndexes(eig.Values(nil)); err != nil {
		S.Linear, S.Circular = math.NaN(), math.NaN()
	}
	return S, nil
}
