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

package nano

// BuildError is the error type for problems found while building or writing a cluster.
type BuildError struct {
	message  string
	deco     []string
	critical bool
}

func (err *BuildError) Error() string { return "gonano: " + err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *BuildError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *BuildError) Critical() bool { return err.critical }

// errDecorate is a helper function that asserts that the error
// implements Error and decorates the error with the caller's name before returning it.
// if used with a non-gonano.Error error, it will just return the error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use BuildError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilCluster     = PanicMsg("gonano: nil cluster")
	ErrAtomOutOfRange = PanicMsg("gonano: atom index out of range")
)
