/*
 * enumerator.go, part of gonano.
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
	"math"

	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

// Cursor is the state of a lattice enumeration: the next point to be emitted, the limits
// of the scan and whether the scan is over. Cursors are values: Advance doesn't modify
// the cursor it gets, it returns a new one.
type Cursor struct {
	X, Y, Z  num.Real
	R        num.Real //the scan goes from -R to R in each dimension
	Step     num.Real
	Finished bool
}

// Start returns a cursor for a scan of the given radius, rounded up to an
// integer, with the given step. The radius can't be negative and the step must be positive.
func Start(radius, step num.Real) (Cursor, error) {
	if err := num.CheckPrec(radius, step); err != nil {
		return Cursor{}, errDecorate(err, "Start")
	}
	if radius.Sign() < 0 {
		return Cursor{}, &Error{message: fmt.Sprintf("negative scan radius %s", radius), deco: []string{"Start"}, critical: true}
	}
	if step.Sign() <= 0 {
		return Cursor{}, &Error{message: fmt.Sprintf("non-positive scan step %s", step), deco: []string{"Start"}, critical: true}
	}
	R := radius.Ceil()
	negR := R.Neg()
	return Cursor{X: negR, Y: negR, Z: negR, R: R, Step: step}, nil
}

// Advance returns the point under the cursor c, and the cursor for the next point.
// If c is finished, Advance returns false and c unchanged. The last point of a
// scan is returned together with a finished cursor.
func Advance(c Cursor) (v3.Vec, Cursor, bool) {
	if c.Finished {
		return v3.Vec{}, c, false
	}
	out := v3.Vec{X: c.X, Y: c.Y, Z: c.Z}
	if c.X.Cmp(c.R) == 0 && c.Y.Cmp(c.R) == 0 && c.Z.Cmp(c.R) == 0 {
		c.Finished = true
		return out, c, true
	}
	c.X = c.X.Add(c.Step)
	if c.X.Cmp(c.R) > 0 {
		c.X = c.R.Neg()
		c.Y = c.Y.Add(c.Step)
		if c.Y.Cmp(c.R) > 0 {
			c.Y = c.R.Neg()
			c.Z = c.Z.Add(c.Step)
			if c.Z.Cmp(c.R) > 0 {
				c.Finished = true
			}
		}
	}
	return out, c, true
}

// Enumerator produces, one by one, the fractional coordinates of a cubic grid. It owns its cursor,
// and it is not safe for concurrent use. It can't be restarted: a new Enumerator is needed to scan again.
type Enumerator struct {
	cur     Cursor
	emitted int
}

// NewEnumerator returns an enumerator for a grid of the given radius (in units of the
// lattice constant), with the step that corresponds to the given kind of lattice.
func NewEnumerator(radius num.Real, kind Kind) (*Enumerator, error) {
	step, err := kind.Step(radius.Prec())
	if err != nil {
		return nil, errDecorate(err, "NewEnumerator")
	}
	c, err := Start(radius, step)
	if err != nil {
		return nil, errDecorate(err, "NewEnumerator")
	}
	return &Enumerator{cur: c}, nil
}

// Resume returns an enumerator that continues the scan from c.
func Resume(c Cursor) *Enumerator {
	return &Enumerator{cur: c}
}

// Next returns the next point of the grid. The second return value is false when the
// enumeration is over, in which case the vector is meaningless.
func (E *Enumerator) Next() (v3.Vec, bool) {
	var p v3.Vec
	var ok bool
	p, E.cur, ok = Advance(E.cur)
	if ok {
		E.emitted++
	}
	return p, ok
}

// Cursor returns the current state of the enumeration.
func (E *Enumerator) Cursor() Cursor {
	return E.cur
}

// Emitted returns the number of points produced so far.
func (E *Enumerator) Emitted() int {
	return E.emitted
}

// Count returns the number of points that a full scan with the given radius and step produces,
// ((2R/step)+1)^3, with R the radius rounded up.
func Count(radius, step num.Real) (int, error) {
	if err := num.CheckPrec(radius, step); err != nil {
		return 0, errDecorate(err, "Count")
	}
	if step.Sign() <= 0 || radius.Sign() < 0 {
		return 0, &Error{message: "invalid radius or step", deco: []string{"Count"}, critical: true}
	}
	R := radius.Ceil()
	perside, err := R.Add(R).Quo(step)
	if err != nil {
		return 0, errDecorate(err, "Count")
	}
	n, ok := perside.Floor().Int64()
	//(n+1)^3 must fit in an int64, and 2097152^3 = 2^63.
	if !ok || n >= 2097151 {
		return 0, &Error{message: fmt.Sprintf("grid too large: %s points per side", perside), deco: []string{"Count"}, critical: true}
	}
	n++
	total := n * n * n
	if total > math.MaxInt {
		return 0, &Error{message: fmt.Sprintf("grid too large: %d points", total), deco: []string{"Count"}, critical: true}
	}
	return int(total), nil
}
