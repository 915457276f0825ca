/*
 * shape_test.go, part of gonano.
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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

const prec uint32 = 30

func unitCube(Te *testing.T) *Shape {
	S, err := Build("cube", num.One(prec))
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

// grid returns the points of a cubic grid from -lim to lim with the given step.
func grid(lim, step string) []v3.Vec {
	l := num.MustParse(lim, prec)
	s := num.MustParse(step, prec)
	var vals []num.Real
	for v := l.Neg(); v.Cmp(l) <= 0; v = v.Add(s) {
		vals = append(vals, v)
	}
	ret := make([]v3.Vec, 0, len(vals)*len(vals)*len(vals))
	for _, x := range vals {
		for _, y := range vals {
			for _, z := range vals {
				ret = append(ret, v3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return ret
}

func TestUnitCube(Te *testing.T) {
	S := unitCube(Te)
	if S.Len() != 6 {
		Te.Fatalf("A cube should have 6 faces, got %d", S.Len())
	}
	inside := 0
	for _, p := range grid("1.5", "0.25") {
		f := p.R3()
		want := math.Max(math.Abs(f.X), math.Max(math.Abs(f.Y), math.Abs(f.Z))) <= 1
		if S.Contains(p) != want {
			Te.Errorf("Point %v: Contains gave %v", p, !want)
		}
		if want {
			inside++
		}
	}
	//from -1 to 1 in 0.25 steps there are 9 values.
	if inside != 9*9*9 {
		Te.Errorf("Expected %d points inside, got %d", 9*9*9, inside)
	}
}

// The 6 faces given by hand, with the orientation of the normals given by the winding
// of the vertices, as in the original definition of a cube.
func TestHandMadeCube(Te *testing.T) {
	one := num.One(prec)
	faces := [][]v3.Vec{
		{v3.IntVec(1, -1, -1, prec), v3.IntVec(1, 1, -1, prec), v3.IntVec(1, 1, 1, prec)},
		{v3.IntVec(-1, -1, -1, prec), v3.IntVec(-1, -1, 1, prec), v3.IntVec(-1, 1, 1, prec)},
		{v3.IntVec(-1, 1, -1, prec), v3.IntVec(-1, 1, 1, prec), v3.IntVec(1, 1, 1, prec)},
		{v3.IntVec(-1, -1, -1, prec), v3.IntVec(1, -1, -1, prec), v3.IntVec(1, -1, 1, prec)},
		{v3.IntVec(-1, -1, 1, prec), v3.IntVec(1, -1, 1, prec), v3.IntVec(1, 1, 1, prec)},
		{v3.IntVec(-1, -1, -1, prec), v3.IntVec(-1, 1, -1, prec), v3.IntVec(1, 1, -1, prec)},
	}
	S, err := New("handcube", one, Table{Faces: faces})
	if err != nil {
		Te.Fatal(err)
	}
	normals := []v3.Vec{
		v3.IntVec(1, 0, 0, prec), v3.IntVec(-1, 0, 0, prec), v3.IntVec(0, 1, 0, prec),
		v3.IntVec(0, -1, 0, prec), v3.IntVec(0, 0, 1, prec), v3.IntVec(0, 0, -1, prec),
	}
	for i, f := range S.Faces {
		if !f.Normal.Equal(normals[i]) {
			Te.Errorf("Face %d: expected normal %v, got %v", i, normals[i], f.Normal)
		}
	}
	if !S.Contains(v3.IntVec(1, 1, 1, prec)) || S.Contains(v3.MustParseVec("1.0001", "0", "0", prec)) {
		Te.Error("Wrong boundary handling for the hand-made cube")
	}
}

func TestOutwardNormals(Te *testing.T) {
	for _, name := range Names() {
		S, err := Build(name, num.MustParse("2.5", prec))
		if err != nil {
			Te.Fatal(name, err)
		}
		for i, f := range S.Faces {
			if f.Normal.Dot(f.Anchor()).Sign() <= 0 {
				Te.Errorf("%s: face %d has an inward normal %v", name, i, f.Normal)
			}
			//all vertices are on the plane.
			for _, v := range f.Vertices {
				d := f.Distance(v).Abs().Float64()
				if d > 1e-20 {
					Te.Errorf("%s: face %d is not planar (%g)", name, i, d)
				}
			}
		}
		if !S.Contains(v3.Zero(prec)) {
			Te.Errorf("%s doesn't contain its center", name)
		}
		if S.Contains(v3.MustParseVec("2.6", "0", "0", prec)) {
			Te.Errorf("%s contains a point beyond its radius", name)
		}
		fmt.Println(S)
	}
}

func TestSpecificShapes(Te *testing.T) {
	r := num.FromInt(2, prec)
	oct, err := Build("octahedron", r)
	if err != nil {
		Te.Fatal(err)
	}
	//|x|+|y|+|z| <= 2
	if !oct.Contains(v3.IntVec(1, 1, 0, prec)) || oct.Contains(v3.MustParseVec("1", "0.5", "0.6", prec)) {
		Te.Error("Wrong octahedron")
	}
	rd, err := Build("rhombic-dodecahedron", r)
	if err != nil {
		Te.Fatal(err)
	}
	//|x|+|y| <= 2 and permutations
	if !rd.Contains(v3.IntVec(1, 1, 1, prec)) || rd.Contains(v3.MustParseVec("1.2", "0", "1.2", prec)) {
		Te.Error("Wrong rhombic dodecahedron")
	}
	if rd.Len() != 12 {
		Te.Errorf("Rhombic dodecahedron with %d faces", rd.Len())
	}
	tet, err := Build("tetrahedron", r)
	if err != nil {
		Te.Fatal(err)
	}
	//the opposite of a vertex direction is a face direction, much closer to the center.
	if tet.Contains(v3.IntVec(-1, -1, -1, prec)) || !tet.Contains(v3.MustParseVec("0.5", "0.5", "0.5", prec)) {
		Te.Error("Wrong tetrahedron")
	}
}

func TestScaleInvariance(Te *testing.T) {
	k := num.MustParse("2.5", prec)
	for _, name := range Names() {
		S, err := Build(name, num.One(prec))
		if err != nil {
			Te.Fatal(err)
		}
		big, err := S.Scale(k)
		if err != nil {
			Te.Fatal(err)
		}
		for _, p := range grid("1.25", "0.25") {
			if S.Contains(p) != big.Contains(p.Scale(k)) {
				Te.Errorf("%s: containment of %v changed upon scaling", name, p)
			}
		}
	}
	if _, err := unitCube(Te).Scale(num.Zero(prec)); err == nil {
		Te.Error("Zero scaling accepted")
	}
}

func TestFaceNormal(Te *testing.T) {
	face := []v3.Vec{
		v3.MustParseVec("1", "0", "0", prec),
		v3.MustParseVec("0", "1", "0", prec),
		v3.MustParseVec("0", "0", "1", prec),
	}
	n1, err := FaceNormal(face, true)
	if err != nil {
		Te.Fatal(err)
	}
	n2, err := FaceNormal(face, true)
	if err != nil {
		Te.Fatal(err)
	}
	if !n1.Equal(n2) {
		Te.Errorf("FaceNormal not idempotent: %v %v", n1, n2)
	}
	//reversing the winding doesn't change the oriented normal
	rev := []v3.Vec{face[2], face[1], face[0]}
	n3, err := FaceNormal(rev, true)
	if err != nil {
		Te.Fatal(err)
	}
	if !n1.Equal(n3) {
		Te.Errorf("Orientation depends on the winding: %v %v", n1, n3)
	}
	//but it does if we don't orient.
	n4, err := FaceNormal(rev, false)
	if err != nil {
		Te.Fatal(err)
	}
	if !n4.Equal(n1.Neg()) {
		Te.Errorf("Unoriented normal should follow the winding: %v %v", n1, n4)
	}
	collinear := []v3.Vec{v3.IntVec(0, 0, 1, prec), v3.IntVec(1, 1, 1, prec), v3.IntVec(2, 2, 1, prec), v3.IntVec(0, 2, 1, prec)}
	_, err = FaceNormal(collinear, true)
	var mf *MalformedFaceError
	var dv *v3.DegenerateVectorError
	if !errors.As(err, &mf) || !errors.As(err, &dv) {
		Te.Errorf("Expected a MalformedFaceError wrapping a DegenerateVectorError, got %v", err)
	}
	if _, err = FaceNormal(face[:2], true); !errors.As(err, &mf) {
		Te.Errorf("Expected a MalformedFaceError for a 2-vertex face, got %v", err)
	}
	//A collinear face makes the whole shape fail.
	table, _ := Cube(num.One(prec))
	table.Faces[3] = collinear
	if _, err := New("broken", num.One(prec), table); err == nil {
		Te.Error("Shape with a collinear face accepted")
	}
}

func TestRegistry(Te *testing.T) {
	if _, err := Build("dodecahedron-of-doom", num.One(prec)); err == nil {
		Te.Error("Unknown shape built")
	}
	Register("test-cube", Cube)
	if _, ok := Lookup("test-cube"); !ok {
		Te.Error("Registered shape not found")
	}
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			Te.Errorf("Names not sorted: %v", names)
		}
	}
}
