/*
 * num.go, part of gonano.
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

package num

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrec is the number of significant digits used when the caller has
// no opinion. It matches the digits of an IEEE 754 decimal128.
const DefaultPrec uint32 = 34

// Real is an immutable arbitrary-precision decimal number. Every Real carries the
// number of significant digits it was built with, and every operation on it
// rounds its result to that many digits. The zero value is not usable; build
// Reals with Parse, FromInt, FromFloat, Zero or One.
type Real struct {
	d    *apd.Decimal
	prec uint32
}

// contexts are cheap, but there is no reason to build one for
// each operation in the lattice loops.
var contexts = map[uint32]*apd.Context{}

func context(prec uint32) *apd.Context {
	if c, ok := contexts[prec]; ok {
		return c
	}
	return apd.BaseContext.WithPrecision(prec)
}

// Cache builds, ahead of time, the contexts for the given precisions.
// It is not safe to call Cache concurrently with any other function in the
// package, so it should be called, if at all, during program initialization.
func Cache(precs ...uint32) {
	for _, p := range precs {
		contexts[p] = apd.BaseContext.WithPrecision(p)
	}
}

func init() {
	Cache(DefaultPrec)
}

func checkPrec(prec uint32, caller string) error {
	if prec == 0 {
		return &Error{message: "precision must be larger than zero", deco: []string{caller}, critical: true}
	}
	return nil
}

// Parse returns the Real represented by s, rounded to prec significant digits.
func Parse(s string, prec uint32) (Real, error) {
	if err := checkPrec(prec, "Parse"); err != nil {
		return Real{}, err
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Real{}, &Error{message: fmt.Sprintf("can't parse %q as a number: %v", s, err), deco: []string{"Parse"}, critical: true}
	}
	if _, err := context(prec).Round(d, d); err != nil {
		return Real{}, &Error{message: fmt.Sprintf("can't round %q to %d digits: %v", s, prec, err), deco: []string{"Parse"}, critical: true}
	}
	return Real{d: d, prec: prec}, nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string, prec uint32) Real {
	r, err := Parse(s, prec)
	if err != nil {
		panic(PanicMsg(err.Error()))
	}
	return r
}

// FromInt returns i as a Real with prec digits.
func FromInt(i int64, prec uint32) Real {
	if prec == 0 {
		panic(ErrZeroPrecision)
	}
	d := apd.New(i, 0)
	context(prec).Round(d, d)
	return Real{d: d, prec: prec}
}

// FromFloat returns the Real closest to f with prec digits. NaNs and
// infinities are rejected.
func FromFloat(f float64, prec uint32) (Real, error) {
	if err := checkPrec(prec, "FromFloat"); err != nil {
		return Real{}, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Real{}, &Error{message: fmt.Sprintf("can't represent %v", f), deco: []string{"FromFloat"}, critical: true}
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Real{}, &Error{message: err.Error(), deco: []string{"FromFloat"}, critical: true}
	}
	context(prec).Round(d, d)
	return Real{d: d, prec: prec}, nil
}

// Zero returns 0 with prec digits.
func Zero(prec uint32) Real { return FromInt(0, prec) }

// One returns 1 with prec digits.
func One(prec uint32) Real { return FromInt(1, prec) }

func (r Real) dec() *apd.Decimal {
	if r.d == nil {
		return new(apd.Decimal)
	}
	return r.d
}

// Prec returns the number of significant digits of r.
func (r Real) Prec() uint32 { return r.prec }

// WithPrec returns r rounded to (or widened to) prec digits.
func (r Real) WithPrec(prec uint32) Real {
	if prec == 0 {
		panic(ErrZeroPrecision)
	}
	if prec == r.prec {
		return r
	}
	d := new(apd.Decimal)
	context(prec).Round(d, r.dec())
	return Real{d: d, prec: prec}
}

// Both operands of a binary operation must share their precision.
// A mismatch means the program is wrong, so we panic.
func mustMatch(r, s Real) {
	if r.prec != s.prec {
		panic(ErrPrecisionMismatch)
	}
}

// ctxErr turns the (rare) errors that apd returns for operations that
// can't fail in our use into panics.
func ctxErr(err error) {
	if err != nil {
		panic(PanicMsg("gonano/num: " + err.Error()))
	}
}

// Add returns r+s.
func (r Real) Add(s Real) Real {
	mustMatch(r, s)
	d := new(apd.Decimal)
	_, err := context(r.prec).Add(d, r.dec(), s.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}
}

// Sub returns r-s.
func (r Real) Sub(s Real) Real {
	mustMatch(r, s)
	d := new(apd.Decimal)
	_, err := context(r.prec).Sub(d, r.dec(), s.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}
}

// Mul returns r*s.
func (r Real) Mul(s Real) Real {
	mustMatch(r, s)
	d := new(apd.Decimal)
	_, err := context(r.prec).Mul(d, r.dec(), s.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}
}

// Quo returns r/s, or a DivideByZeroError if s is zero.
func (r Real) Quo(s Real) (Real, error) {
	mustMatch(r, s)
	if s.IsZero() {
		return Real{}, newDivideByZero("Quo")
	}
	d := new(apd.Decimal)
	_, err := context(r.prec).Quo(d, r.dec(), s.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}, nil
}

// Rem returns the remainder of r/s, truncating the quotient towards zero.
// A zero s gives a DivideByZeroError.
func (r Real) Rem(s Real) (Real, error) {
	mustMatch(r, s)
	if s.IsZero() {
		return Real{}, newDivideByZero("Rem")
	}
	d := new(apd.Decimal)
	_, err := context(r.prec).Rem(d, r.dec(), s.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}, nil
}

// Pow returns r**s. Negative bases with non-integer exponents, and zero
// raised to a negative power, give an error.
func (r Real) Pow(s Real) (Real, error) {
	mustMatch(r, s)
	if r.IsZero() && s.Sign() < 0 {
		return Real{}, newDivideByZero("Pow")
	}
	d := new(apd.Decimal)
	if _, err := context(r.prec).Pow(d, r.dec(), s.dec()); err != nil {
		return Real{}, &Error{message: fmt.Sprintf("can't compute %s**%s: %v", r, s, err), deco: []string{"Pow"}, critical: true}
	}
	return Real{d: d, prec: r.prec}, nil
}

// Sqrt returns the square root of r. Negative numbers give an error.
func (r Real) Sqrt() (Real, error) {
	if r.Sign() < 0 {
		return Real{}, &Error{message: fmt.Sprintf("square root of negative number %s", r), deco: []string{"Sqrt"}, critical: true}
	}
	d := new(apd.Decimal)
	_, err := context(r.prec).Sqrt(d, r.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}, nil
}

// Cbrt returns the cube root of r.
func (r Real) Cbrt() Real {
	d := new(apd.Decimal)
	_, err := context(r.prec).Cbrt(d, r.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}
}

// Abs returns |r|.
func (r Real) Abs() Real {
	d := new(apd.Decimal)
	d.Abs(r.dec())
	return Real{d: d, prec: r.prec}
}

// Neg returns -r. The negative of zero is (positive) zero.
func (r Real) Neg() Real {
	if r.IsZero() {
		return Zero(r.prec)
	}
	d := new(apd.Decimal)
	d.Neg(r.dec())
	return Real{d: d, prec: r.prec}
}

// Floor returns the largest integer not larger than r.
func (r Real) Floor() Real {
	d := new(apd.Decimal)
	_, err := context(r.prec).Floor(d, r.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}
}

// Ceil returns the smallest integer not smaller than r.
func (r Real) Ceil() Real {
	d := new(apd.Decimal)
	_, err := context(r.prec).Ceil(d, r.dec())
	ctxErr(err)
	return Real{d: d, prec: r.prec}
}

// Cmp compares r and s numerically and returns -1, 0 or +1.
// The precisions are not compared.
func (r Real) Cmp(s Real) int {
	return r.dec().Cmp(s.dec())
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Real) Sign() int {
	return r.dec().Sign()
}

// IsZero returns true if r is (positive or negative) zero.
func (r Real) IsZero() bool {
	return r.dec().IsZero()
}

// Float64 returns the float64 closest to r.
func (r Real) Float64() float64 {
	f, err := r.dec().Float64()
	if err != nil {
		//only happens for values out of the float64 range.
		if r.Sign() < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if f == 0 {
		return 0 //no negative zeros in the output files.
	}
	return f
}

// Int64 returns r rounded to the nearest integer. The second return value is false
// if r doesn't fit in an int64.
func (r Real) Int64() (int64, bool) {
	d := new(apd.Decimal)
	ctx := context(r.prec)
	//Precision must allow all the integer digits.
	if _, err := ctx.RoundToIntegralValue(d, r.dec()); err != nil {
		return 0, false
	}
	i, err := d.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// String returns r in plain (non-exponential) decimal notation.
func (r Real) String() string {
	return r.dec().Text('f')
}

// CheckPrec returns a PrecisionMismatchError if not all the given Reals share
// the same precision.
func CheckPrec(reals ...Real) error {
	if len(reals) == 0 {
		return nil
	}
	p := reals[0].prec
	for i, v := range reals[1:] {
		if v.prec != p {
			return &PrecisionMismatchError{Want: p, Got: v.prec, Index: i + 1, deco: []string{"CheckPrec"}}
		}
	}
	return nil
}
