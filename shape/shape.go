/*
 * shape.go, part of gonano.
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

package shape

import (
	"fmt"

	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

// Table is the raw description of a polyhedron: the vertices of each of its faces.
// If OrientOutward is true, the normals are oriented with the centroid test of
// FaceNormal, and the winding of the vertices doesn't matter. Otherwise, the
// vertices of each face must be counterclockwise when seen from outside.
type Table struct {
	Faces         [][]v3.Vec
	OrientOutward bool
}

// Shape is a convex polyhedron centered at the origin, described by its faces.
// The faces are fixed at construction. A Shape is safe for concurrent use.
type Shape struct {
	Name   string   //only for diagnostics.
	Radius num.Real //half-width of the cube that contains the shape.
	Faces  []Face
}

// New builds a shape from a face table. Any malformed face makes the whole
// shape invalid, and an error is returned.
func New(name string, radius num.Real, table Table) (*Shape, error) {
	if len(table.Faces) < 4 {
		return nil, &Error{message: fmt.Sprintf("shape %s: a polyhedron needs at least 4 faces, got %d", name, len(table.Faces)), deco: []string{"New"}, critical: true}
	}
	if radius.Sign() <= 0 {
		return nil, &Error{message: fmt.Sprintf("shape %s: the radius must be positive, got %s", name, radius), deco: []string{"New"}, critical: true}
	}
	S := &Shape{Name: name, Radius: radius, Faces: make([]Face, 0, len(table.Faces))}
	for i, vertices := range table.Faces {
		f, err := NewFace(vertices, table.OrientOutward)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("New: shape %s, face %d", name, i))
		}
		if f.Normal.Prec() != radius.Prec() {
			return nil, &num.PrecisionMismatchError{Want: radius.Prec(), Got: f.Normal.Prec(), Index: i}
		}
		S.Faces = append(S.Faces, f)
	}
	return S, nil
}

// Contains returns true if p is inside S or on its surface.
func (S *Shape) Contains(p v3.Vec) bool {
	for _, f := range S.Faces {
		if f.Outside(p) {
			return false
		}
	}
	return true
}

// Len returns the number of faces of S.
func (S *Shape) Len() int {
	return len(S.Faces)
}

// Scale returns a copy of S with all its vertices (and radius) multiplied by k,
// which must be positive. The normals don't change.
func (S *Shape) Scale(k num.Real) (*Shape, error) {
	if k.Sign() <= 0 {
		return nil, &Error{message: fmt.Sprintf("shape %s: scale factor must be positive, got %s", S.Name, k), deco: []string{"Scale"}, critical: true}
	}
	k = k.WithPrec(S.Radius.Prec())
	ret := &Shape{Name: S.Name, Radius: S.Radius.Mul(k), Faces: make([]Face, len(S.Faces))}
	for i, f := range S.Faces {
		vs := make([]v3.Vec, len(f.Vertices))
		for j, v := range f.Vertices {
			vs[j] = v.Scale(k)
		}
		ret.Faces[i] = Face{Vertices: vs, Normal: f.Normal}
	}
	return ret, nil
}

// String returns a short description of S.
func (S *Shape) String() string {
	return fmt.Sprintf("%s (radius %s, %d faces)", S.Name, S.Radius, len(S.Faces))
}
