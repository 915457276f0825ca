/*
 * options.go, part of gonano.
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

import (
	"io"
	"log/slog"
	"runtime"
)

// Options contains the settings for the cluster builders.
// Options are read by getter methods which, when given an argument,
// set the option to that value first.
type Options struct {
	cpus   int
	name   string
	logger *slog.Logger
}

// DefaultOptions returns reasonable options: as many workers as CPUs,
// "gonano" as the cluster name, and a logger that discards everything.
func DefaultOptions() *Options {
	r := new(Options)
	r.cpus = runtime.NumCPU()
	r.name = "gonano"
	r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return r
}

// Cpus returns the number of goroutines used by BuildConc,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Name returns the name given to the clusters built,
// and sets it to a new value, if given.
func (O *Options) Name(name ...string) string {
	if len(name) > 0 && name[0] != "" {
		O.name = name[0]
	}
	return O.name
}

// Logger returns the logger used by the builders,
// and sets it to a new value, if given.
func (O *Options) Logger(l ...*slog.Logger) *slog.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}
