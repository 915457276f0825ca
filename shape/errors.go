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

package shape

//Errors

// Error is the general error type of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err *Error) Error() string { return err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// MalformedFaceError signals a face table that can't describe a face of a convex
// polyhedron: too few vertices, or collinear leading vertices. These errors are
// fatal for the shape being built.
type MalformedFaceError struct {
	msg  string
	deco []string
	err  error
}

func (err *MalformedFaceError) Error() string {
	if err.err != nil {
		return "gonano/shape: " + err.msg + ": " + err.err.Error()
	}
	return "gonano/shape: " + err.msg
}

// Unwrap returns the underlying error, if any (normally a v3.DegenerateVectorError).
func (err *MalformedFaceError) Unwrap() error { return err.err }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *MalformedFaceError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true.
func (err *MalformedFaceError) Critical() bool { return true }

type errorInt interface {
	Error() string
	Decorate(string) []string
}

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
