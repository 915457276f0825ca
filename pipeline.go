/*
 * pipeline.go, part of gonano.
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
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/shape"
	"github.com/rmera/gonano/v3"
)

// GridRadius returns the radius, in fractional units of the cell, of the lattice scan needed
// to cover sh: the radius of the shape divided by the shortest edge of the cell, rounded up.
func GridRadius(cell *lattice.UnitCell, sh *shape.Shape) (num.Real, error) {
	if err := num.CheckPrec(cell.A, sh.Radius); err != nil {
		return num.Real{}, errDecorate(err, "GridRadius")
	}
	q, err := sh.Radius.Quo(cell.MinEdge())
	if err != nil {
		return num.Real{}, errDecorate(err, "GridRadius")
	}
	return q.Ceil(), nil
}

// setup checks the input of the builders and returns the mapper and enumerator for the build.
func setup(cell *lattice.UnitCell, sh *shape.Shape, caller string) (*lattice.Mapper, *lattice.Enumerator, error) {
	if cell == nil || sh == nil {
		return nil, nil, &BuildError{message: "nil unit cell or shape", deco: []string{caller}, critical: true}
	}
	M, err := lattice.NewMapper(cell)
	if err != nil {
		return nil, nil, errDecorate(err, caller)
	}
	R, err := GridRadius(cell, sh)
	if err != nil {
		return nil, nil, errDecorate(err, caller)
	}
	E, err := lattice.NewEnumerator(R, cell.Kind)
	if err != nil {
		return nil, nil, errDecorate(err, caller)
	}
	return M, E, nil
}

// place returns the atom at the fractional lattice point p, or nil if
// there is no basis atom there or it falls outside sh. The ID is not set.
func place(M *lattice.Mapper, sh *shape.Shape, p v3.Vec) (*Atom, error) {
	b, err := M.MapVec(p)
	if err != nil || b == nil {
		return nil, err
	}
	pos := M.Cartesian(p)
	if !sh.Contains(pos) {
		return nil, nil
	}
	return &Atom{Symbol: b.Symbol, Pos: pos, Charge: b.Charge, Radius: b.Radius}, nil
}

// Build returns the cluster formed by the atoms of the crystal described by cell that lie
// inside sh, both centered at the origin. The atoms are in the order in which the lattice is
// scanned (x varying fastest, then y, then z) and their IDs are consecutive, starting from 1.
// The context is checked once per lattice point, so the build can be cancelled.
func Build(ctx context.Context, cell *lattice.UnitCell, sh *shape.Shape, opts *Options) (*Cluster, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	M, E, err := setup(cell, sh, "Build")
	if err != nil {
		return nil, err
	}
	log := opts.Logger()
	log.Debug("building cluster", "shape", sh.Name, "radius", sh.Radius.String(), "grid", E.Cursor().R.String())
	start := time.Now()
	cl := &Cluster{Name: opts.Name(), Cell: cell, Shape: sh}
	for p, ok := E.Next(); ok; p, ok = E.Next() {
		if err := ctx.Err(); err != nil {
			return nil, errDecorate(err, "Build")
		}
		at, err := place(M, sh, p)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Build: point %s", p))
		}
		if at == nil {
			continue
		}
		at.ID = len(cl.Atoms) + 1
		cl.Atoms = append(cl.Atoms, at)
	}
	log.Info("cluster built", "shape", sh.Name, "atoms", len(cl.Atoms), "points", E.Emitted(), "elapsed", time.Since(start))
	return cl, nil
}

type latticeJob struct {
	seq int
	p   v3.Vec
}

type latticeHit struct {
	seq int
	at  *Atom
}

// BuildConc is like Build, but the lattice points are mapped and tested by opts.Cpus() goroutines.
// A single goroutine owns the enumeration. The result is the same as that of Build.
func BuildConc(ctx context.Context, cell *lattice.UnitCell, sh *shape.Shape, opts *Options) (*Cluster, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	M, E, err := setup(cell, sh, "BuildConc")
	if err != nil {
		return nil, err
	}
	cpus := opts.Cpus()
	if cpus < 1 {
		cpus = 1
	}
	log := opts.Logger()
	log.Debug("building cluster concurrently", "shape", sh.Name, "radius", sh.Radius.String(), "grid", E.Cursor().R.String(), "workers", cpus)
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan latticeJob, 4*cpus)
	hits := make(chan latticeHit, 4*cpus)
	g.Go(func() error {
		defer close(jobs)
		seq := 0
		for p, ok := E.Next(); ok; p, ok = E.Next() {
			select {
			case jobs <- latticeJob{seq: seq, p: p}:
			case <-gctx.Done():
				return gctx.Err()
			}
			seq++
		}
		return nil
	})
	var wg sync.WaitGroup
	for i := 0; i < cpus; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				at, err := place(M, sh, j.p)
				if err != nil {
					return errDecorate(err, fmt.Sprintf("BuildConc: point %s", j.p))
				}
				if at == nil {
					continue
				}
				select {
				case hits <- latticeHit{seq: j.seq, at: at}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(hits)
	}()
	collected := make([]latticeHit, 0)
	for h := range hits {
		collected = append(collected, h)
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "BuildConc")
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].seq < collected[j].seq })
	cl := &Cluster{Name: opts.Name(), Cell: cell, Shape: sh, Atoms: make([]*Atom, len(collected))}
	for i, h := range collected {
		h.at.ID = i + 1
		cl.Atoms[i] = h.at
	}
	log.Info("cluster built", "shape", sh.Name, "atoms", len(cl.Atoms), "points", E.Emitted(), "workers", cpus, "elapsed", time.Since(start))
	return cl, nil
}
