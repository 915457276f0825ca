/*
 * vec.go, part of gonano.
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

package v3

import (
	"fmt"

	"github.com/rmera/gonano/num"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in 3D space, with arbitrary-precision components.
// All three components share the same precision. Vecs are values: no operation
// modifies its operands.
type Vec struct {
	X, Y, Z num.Real
}

// NewVec returns a vector with the given components, or a num.PrecisionMismatchError
// if they don't share a precision.
func NewVec(x, y, z num.Real) (Vec, error) {
	if err := num.CheckPrec(x, y, z); err != nil {
		return Vec{}, errDecorate(err, "NewVec")
	}
	return Vec{X: x, Y: y, Z: z}, nil
}

// ParseVec parses the three strings into a vector with prec digits.
func ParseVec(x, y, z string, prec uint32) (Vec, error) {
	var c [3]num.Real
	for i, s := range [3]string{x, y, z} {
		r, err := num.Parse(s, prec)
		if err != nil {
			return Vec{}, errDecorate(err, "ParseVec")
		}
		c[i] = r
	}
	return Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// MustParseVec is like ParseVec but panics on error. Meant for constants and tests.
func MustParseVec(x, y, z string, prec uint32) Vec {
	v, err := ParseVec(x, y, z, prec)
	if err != nil {
		panic(PanicMsg(err.Error()))
	}
	return v
}

// IntVec returns the vector (x,y,z) with prec digits.
func IntVec(x, y, z int64, prec uint32) Vec {
	return Vec{X: num.FromInt(x, prec), Y: num.FromInt(y, prec), Z: num.FromInt(z, prec)}
}

// Zero returns the zero vector with prec digits.
func Zero(prec uint32) Vec {
	return IntVec(0, 0, 0, prec)
}

// Prec returns the precision of the components of v.
func (v Vec) Prec() uint32 { return v.X.Prec() }

// Comp returns the i-th (0, 1 or 2) component of v. Panics if i is out of range.
func (v Vec) Comp(i int) num.Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(ErrIndexOutOfRange)
}

func mustMatch(u, v Vec) {
	if u.Prec() != v.Prec() {
		panic(ErrPrecisionMismatch)
	}
}

// Add returns v+u.
func (v Vec) Add(u Vec) Vec {
	mustMatch(v, u)
	return Vec{X: v.X.Add(u.X), Y: v.Y.Add(u.Y), Z: v.Z.Add(u.Z)}
}

// Sub returns v-u.
func (v Vec) Sub(u Vec) Vec {
	mustMatch(v, u)
	return Vec{X: v.X.Sub(u.X), Y: v.Y.Sub(u.Y), Z: v.Z.Sub(u.Z)}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

// Dot returns the dot product of v and u.
func (v Vec) Dot(u Vec) num.Real {
	mustMatch(v, u)
	return v.X.Mul(u.X).Add(v.Y.Mul(u.Y)).Add(v.Z.Mul(u.Z))
}

// Cross returns the cross product v x u.
func (v Vec) Cross(u Vec) Vec {
	mustMatch(v, u)
	return Vec{
		X: v.Y.Mul(u.Z).Sub(v.Z.Mul(u.Y)),
		Y: v.Z.Mul(u.X).Sub(v.X.Mul(u.Z)),
		Z: v.X.Mul(u.Y).Sub(v.Y.Mul(u.X)),
	}
}

// Norm returns the euclidean norm of v.
func (v Vec) Norm() num.Real {
	n, err := v.Dot(v).Sqrt()
	if err != nil {
		panic(PanicMsg(err.Error())) //a sum of squares can't be negative.
	}
	return n
}

// Scale returns k*v. k is brought to the precision of v before the operation.
func (v Vec) Scale(k num.Real) Vec {
	k = k.WithPrec(v.Prec())
	return Vec{X: v.X.Mul(k), Y: v.Y.Mul(k), Z: v.Z.Mul(k)}
}

// Divide returns v/k, or a num.DivideByZeroError if k is zero.
// k is brought to the precision of v before the operation.
func (v Vec) Divide(k num.Real) (Vec, error) {
	k = k.WithPrec(v.Prec())
	var ret Vec
	var err error
	if ret.X, err = v.X.Quo(k); err != nil {
		return Vec{}, errDecorate(err, "Divide")
	}
	//if X went fine, so will Y and Z.
	ret.Y, _ = v.Y.Quo(k)
	ret.Z, _ = v.Z.Quo(k)
	return ret, nil
}

// Normalize returns the unit vector with the direction of v. A zero v gives a DegenerateVectorError.
func (v Vec) Normalize() (Vec, error) {
	n := v.Norm()
	if n.IsZero() {
		return Vec{}, &DegenerateVectorError{deco: []string{"Normalize"}}
	}
	u, err := v.Divide(n)
	return u, errDecorate(err, "Normalize")
}

// IsZero returns true if all the components of v are zero.
func (v Vec) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

// Equal returns true if v and u are numerically identical.
func (v Vec) Equal(u Vec) bool {
	return v.X.Cmp(u.X) == 0 && v.Y.Cmp(u.Y) == 0 && v.Z.Cmp(u.Z) == 0
}

// R3 returns the closest float64 vector to v.
func (v Vec) R3() r3.Vec {
	return r3.Vec{X: v.X.Float64(), Y: v.Y.Float64(), Z: v.Z.Float64()}
}

// String returns a representation of v with full precision.
func (v Vec) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.X, v.Y, v.Z)
}

// Centroid returns the mean of the given vectors. They must share a precision.
// An empty set gives an error.
func Centroid(vecs []Vec) (Vec, error) {
	if len(vecs) == 0 {
		return Vec{}, &Error{message: "centroid of an empty set of vectors", deco: []string{"Centroid"}, critical: true}
	}
	sum := vecs[0]
	for _, v := range vecs[1:] {
		sum = sum.Add(v)
	}
	c, err := sum.Divide(num.FromInt(int64(len(vecs)), sum.Prec()))
	return c, errDecorate(err, "Centroid")
}
