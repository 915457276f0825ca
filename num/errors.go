/*
 * errors.go, part of gonano.
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

import "fmt"

//Errors

// Error is the general error of the package. It satisfies gonano.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns the error message.
func (err *Error) Error() string { return err.message }

// Decorate adds dec, if not empty, to the decoration slice of the error, and returns the slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

// DivideByZeroError is returned when a number is divided by zero.
type DivideByZeroError struct {
	deco []string
}

func newDivideByZero(caller string) *DivideByZeroError {
	return &DivideByZeroError{deco: []string{caller}}
}

func (err *DivideByZeroError) Error() string { return "gonano/num: division by zero" }

// Decorate adds dec, if not empty, to the decoration slice of the error, and returns the slice.
func (err *DivideByZeroError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true for a division by zero.
func (err *DivideByZeroError) Critical() bool { return true }

// PrecisionMismatchError is returned when numbers that should share a precision
// don't. It signals a bug in the caller or in the configuration, never bad luck.
type PrecisionMismatchError struct {
	Want  uint32 //the precision of the first element
	Got   uint32 //the offending precision
	Index int    //the position of the offending element
	deco  []string
}

func (err *PrecisionMismatchError) Error() string {
	return fmt.Sprintf("gonano/num: precision mismatch: element %d has %d digits, expected %d", err.Index, err.Got, err.Want)
}

// Decorate adds dec, if not empty, to the decoration slice of the error, and returns the slice.
func (err *PrecisionMismatchError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true for a precision mismatch.
func (err *PrecisionMismatchError) Critical() bool { return true }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrPrecisionMismatch = PanicMsg("gonano/num: operands have different precisions")
	ErrZeroPrecision     = PanicMsg("gonano/num: precision must be larger than zero")
)
