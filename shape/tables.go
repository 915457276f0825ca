/*
 * tables.go, part of gonano.
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
	"sort"
	"sync"

	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

// Builder returns the face table of a solid for the given radius, with the
// precision of the radius. The shape must fit in the cube of half-width radius
// centered at the origin.
type Builder func(radius num.Real) (Table, error)

var (
	registryLock sync.RWMutex
	registry     = map[string]Builder{
		"cube":                 Cube,
		"octahedron":           Octahedron,
		"tetrahedron":          Tetrahedron,
		"rhombic-dodecahedron": RhombicDodecahedron,
	}
)

// Register makes b available under name, replacing any builder previously registered with that name.
func Register(name string, b Builder) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[name] = b
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	b, ok := registry[name]
	return b, ok
}

// Names returns the sorted names of all the registered shapes.
func Names() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	ret := make([]string, 0, len(registry))
	for k := range registry {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Build returns the registered shape name with the given radius.
func Build(name string, radius num.Real) (*Shape, error) {
	b, ok := Lookup(name)
	if !ok {
		return nil, &Error{message: fmt.Sprintf("unknown shape %q, available: %v", name, Names()), deco: []string{"Build"}, critical: true}
	}
	table, err := b(radius)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	S, err := New(name, radius, table)
	return S, errDecorate(err, "Build")
}

// vertex returns the vector with the component i set to a, j to b and k to c,
// where {i,j,k} is a permutation of {0,1,2}.
func vertex(i, j, k int, a, b, c num.Real) v3.Vec {
	var comp [3]num.Real
	comp[i], comp[j], comp[k] = a, b, c
	return v3.Vec{X: comp[0], Y: comp[1], Z: comp[2]}
}

// signed returns r or -r.
func signed(r num.Real, s int) num.Real {
	if s < 0 {
		return r.Neg()
	}
	return r
}

var signs = [2]int{1, -1}

// Cube returns the 6 faces of the cube with half-edge radius.
func Cube(radius num.Real) (Table, error) {
	faces := make([][]v3.Vec, 0, 6)
	//the corners of a face, going around it.
	around := [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		for _, s := range signs {
			f := make([]v3.Vec, 0, 4)
			for _, a := range around {
				f = append(f, vertex(i, j, k, signed(radius, s), signed(radius, a[0]), signed(radius, a[1])))
			}
			faces = append(faces, f)
		}
	}
	return Table{Faces: faces, OrientOutward: true}, nil
}

// Octahedron returns the 8 faces of the regular octahedron with its vertices at
// distance radius from the center.
func Octahedron(radius num.Real) (Table, error) {
	zero := num.Zero(radius.Prec())
	faces := make([][]v3.Vec, 0, 8)
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				faces = append(faces, []v3.Vec{
					{X: signed(radius, sx), Y: zero, Z: zero},
					{X: zero, Y: signed(radius, sy), Z: zero},
					{X: zero, Y: zero, Z: signed(radius, sz)},
				})
			}
		}
	}
	return Table{Faces: faces, OrientOutward: true}, nil
}

// Tetrahedron returns the 4 faces of the regular tetrahedron with its vertices at
// distance radius from the center, on alternate corners of a cube.
func Tetrahedron(radius num.Real) (Table, error) {
	p := radius.Prec()
	sq3, err := num.FromInt(3, p).Sqrt()
	if err != nil {
		return Table{}, errDecorate(err, "Tetrahedron")
	}
	a, err := radius.Quo(sq3)
	if err != nil {
		return Table{}, errDecorate(err, "Tetrahedron")
	}
	corners := [4]v3.Vec{
		v3.IntVec(1, 1, 1, p).Scale(a),
		v3.IntVec(1, -1, -1, p).Scale(a),
		v3.IntVec(-1, 1, -1, p).Scale(a),
		v3.IntVec(-1, -1, 1, p).Scale(a),
	}
	faces := make([][]v3.Vec, 0, 4)
	//each face has all the corners but one.
	for skip := range corners {
		f := make([]v3.Vec, 0, 3)
		for i, c := range corners {
			if i != skip {
				f = append(f, c)
			}
		}
		faces = append(faces, f)
	}
	return Table{Faces: faces, OrientOutward: true}, nil
}

// RhombicDodecahedron returns the 12 rhombic faces of the rhombic dodecahedron
// with its 4-fold vertices at distance radius from the center. It is the
// Wigner-Seitz cell of the FCC lattice.
func RhombicDodecahedron(radius num.Real) (Table, error) {
	half, err := radius.Quo(num.FromInt(2, radius.Prec()))
	if err != nil {
		return Table{}, errDecorate(err, "RhombicDodecahedron")
	}
	zero := num.Zero(radius.Prec())
	faces := make([][]v3.Vec, 0, 12)
	//every face is perpendicular to a (±1,±1,0)-type direction
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			k := 3 - i - j
			for _, si := range signs {
				for _, sj := range signs {
					faces = append(faces, []v3.Vec{
						vertex(i, j, k, signed(radius, si), zero, zero),
						vertex(i, j, k, signed(half, si), signed(half, sj), half),
						vertex(i, j, k, zero, signed(radius, sj), zero),
						vertex(i, j, k, signed(half, si), signed(half, sj), half.Neg()),
					})
				}
			}
		}
	}
	return Table{Faces: faces, OrientOutward: true}, nil
}
