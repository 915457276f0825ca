/*
 * gonum.go, part of gonano.
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

//gonum.go contains most of what is needed for handling the gonum/mat types and facilities.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood that a
// "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// FromVecs returns a Matrix with the float64 approximation of the given vectors.
func FromVecs(vecs []Vec) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v.R3())
	}
	return F
}

// Returns view of the given vector of the matrix in the receiver
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Vec returns the i-th vector of F as an r3.Vec
func (F *Matrix) Vec(i int) r3.Vec {
	row := F.RawRowView(i)
	return r3.Vec{X: row[0], Y: row[1], Z: row[2]}
}

// SetVec sets the i-th vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// Col returns a copy of the i-th column (i.e. all the x, y or z coordinates) of F.
func (F *Matrix) Col(i int) []float64 {
	return mat.Col(nil, i, F.Dense)
}

//Errors

// the same as gonano.Error but avoid circular import.
type errorInt interface {
	Error() string
	Decorate(string) []string
}

// Error is the general error type of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ifnored
func (err *Error) Critical() bool { return err.critical }

// DegenerateVectorError is returned when a zero vector is normalized. In gonano that only
// happens with malformed face data (i.e. a face with collinear vertices).
type DegenerateVectorError struct {
	deco []string
}

func (err *DegenerateVectorError) Error() string {
	return "gonano/v3: can't normalize a zero vector"
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *DegenerateVectorError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true, there is nothing to recover from.
func (err *DegenerateVectorError) Critical() bool { return true }

// errDecorate is a helper function that asserts that the error
// implements gonano.Error and decorates the error with the caller's name before returning it.
// if used with a non-gonano.Error error, it will just return the error.
func errDecorate(err error, caller string) error {
	err2, ok := err.(errorInt)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("gonano/v3: A VecMatrix should have 3 columns")
	ErrPrecisionMismatch = PanicMsg("gonano/v3: Vectors have different precisions")
	ErrShape             = PanicMsg("gonano/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("gonano/v3: index out of range")
)
