/*
 * face.go, part of gonano.
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

// Face is a planar face of a convex polyhedron. The vertices are in the order
// given by the face table, which need not be counterclockwise.
type Face struct {
	Vertices []v3.Vec
	Normal   v3.Vec //unit length, pointing away from the interior.
}

// FaceNormal returns the unit normal of the face with the given vertices, obtained from
// the first three of them. If orientOutward is true, the normal is flipped, when needed,
// so it points away from the origin. That only makes sense for convex shapes centered at the
// origin, where the centroid of the face is on the outer side of any plane through the origin parallel to the face.
// Collinear leading vertices give an error, as do faces with fewer than 3 vertices.
func FaceNormal(vertices []v3.Vec, orientOutward bool) (v3.Vec, error) {
	if len(vertices) < 3 {
		return v3.Vec{}, &MalformedFaceError{msg: fmt.Sprintf("a face needs at least 3 vertices, got %d", len(vertices)), deco: []string{"FaceNormal"}}
	}
	v0, v1, v2 := vertices[0], vertices[1], vertices[2]
	if err := checkVertexPrec(vertices); err != nil {
		return v3.Vec{}, errDecorate(err, "FaceNormal")
	}
	n, err := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	if err != nil {
		return v3.Vec{}, &MalformedFaceError{msg: "the first three vertices of the face are collinear", deco: []string{"FaceNormal"}, err: err}
	}
	if !orientOutward {
		return n, nil
	}
	c, err := v3.Centroid(vertices)
	if err != nil {
		return v3.Vec{}, errDecorate(err, "FaceNormal")
	}
	if n.Dot(c).Sign() < 0 {
		n = n.Neg()
	}
	return n, nil
}

// NewFace returns a face with the given vertices and its normal, obtained with FaceNormal.
// The vertex slice is copied.
func NewFace(vertices []v3.Vec, orientOutward bool) (Face, error) {
	n, err := FaceNormal(vertices, orientOutward)
	if err != nil {
		return Face{}, errDecorate(err, "NewFace")
	}
	vs := make([]v3.Vec, len(vertices))
	copy(vs, vertices)
	return Face{Vertices: vs, Normal: n}, nil
}

// Anchor returns the point used to place the plane of the face in space: its first vertex.
func (f Face) Anchor() v3.Vec {
	return f.Vertices[0]
}

// Len returns the number of vertices in the face.
func (f Face) Len() int {
	return len(f.Vertices)
}

// Distance returns the signed distance from the plane of the face to p,
// positive on the outer side.
func (f Face) Distance(p v3.Vec) num.Real {
	return f.Normal.Dot(p.Sub(f.Anchor()))
}

// Outside returns true if p is strictly on the outer side of the face's plane.
func (f Face) Outside(p v3.Vec) bool {
	return f.Distance(p).Sign() > 0
}

func checkVertexPrec(vertices []v3.Vec) error {
	p := vertices[0].Prec()
	for i, v := range vertices {
		if v.Prec() != p {
			return &num.PrecisionMismatchError{Want: p, Got: v.Prec(), Index: i}
		}
	}
	return nil
}
