/*
 * plot_test.go, part of gonano.
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

package nanoplot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/shape"
)

func TestPlots(Te *testing.T) {
	cell, err := nano.FCCCell("Ag", 0, num.DefaultPrec)
	if err != nil {
		Te.Fatal(err)
	}
	sh, err := shape.Build("octahedron", num.MustParse("10", num.DefaultPrec))
	if err != nil {
		Te.Fatal(err)
	}
	cl, err := nano.Build(context.Background(), cell, sh, nil)
	if err != nil {
		Te.Fatal(err)
	}
	S, err := nano.Summarize(cl, 10)
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	radial := filepath.Join(dir, "radial")
	if err := Radial(S.Radial, "Ag octahedron", radial); err != nil {
		Te.Fatal(err)
	}
	proj := filepath.Join(dir, "proj.svg")
	if err := Projection(cl, 0, 1, "Ag octahedron, xy", proj); err != nil {
		Te.Fatal(err)
	}
	for _, f := range []string{radial + ".png", proj} {
		if st, err := os.Stat(f); err != nil || st.Size() == 0 {
			Te.Errorf("plot %s not written: %v", f, err)
		}
	}
	if err := Projection(cl, 0, 0, "bad", proj); err == nil {
		Te.Error("projection on a single axis accepted")
	}
	r, g, b := colors(0, 1)
	if r != 255 || g != 0 || b != 0 {
		Te.Errorf("first color should be red, got %d %d %d", r, g, b)
	}
}
