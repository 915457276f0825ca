/*
 * plot.go, part of gonano.
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

// Package nanoplot draws plots of nanoparticles built with gonano: radial
// distributions and projections of the atoms on a plane.
package nanoplot

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/histo"
)

// plot file names without an extension get this one.
const defaultExt = ".png"

func fileName(plotname string) string {
	if filepath.Ext(plotname) == "" {
		return plotname + defaultExt
	}
	return plotname
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Radial plots the radial histogram h (distances in A) as bars, and saves
// the plot in plotname. If plotname has no extension, ".png" is added.
func Radial(h *histo.Data, title, plotname string) error {
	if h == nil {
		return fmt.Errorf("Radial: nil histogram")
	}
	p := basicPlot(title, "Distance to the center (A)", "Atoms")
	if h.Normalized() {
		p.Y.Label.Text = "Fraction of atoms"
	}
	div := h.CopyDividers()
	vals := h.View()
	bins := make([]plotter.HistogramBin, len(vals))
	for i, v := range vals {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: v}
	}
	r, g, b := colors(0, 1)
	hp := &plotter.Histogram{
		Bins:      bins,
		Width:     (div[len(div)-1] - div[0]) / float64(len(vals)),
		FillColor: color.RGBA{R: r, G: g, B: b, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hp)
	p.Y.Min = 0
	if err := p.Save(5*vg.Inch, 4*vg.Inch, fileName(plotname)); err != nil {
		return fmt.Errorf("Radial: %w", err)
	}
	return nil
}

var axisNames = []string{"x", "y", "z"}

// Projection plots the positions of the atoms of mol projected on the plane of
// the axes a1 and a2 (0 for x, 1 for y, 2 for z). Each element gets its own color and glyph.
// The plot is saved in plotname. If plotname has no extension, ".png" is added.
func Projection(mol nano.Atomer, a1, a2 int, title, plotname string) error {
	if a1 < 0 || a1 > 2 || a2 < 0 || a2 > 2 || a1 == a2 {
		return fmt.Errorf("Projection: invalid axes %d and %d", a1, a2)
	}
	if mol.Len() == 0 {
		return fmt.Errorf("Projection: nothing to plot")
	}
	p := basicPlot(title, axisNames[a1]+" (A)", axisNames[a2]+" (A)")
	bysymbol := make(map[string]plotter.XYs)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		bysymbol[at.Symbol] = append(bysymbol[at.Symbol], plotter.XY{X: at.Pos.Comp(a1).Float64(), Y: at.Pos.Comp(a2).Float64()})
	}
	symbols := make([]string, 0, len(bysymbol))
	for k := range bysymbol {
		symbols = append(symbols, k)
	}
	sort.Strings(symbols)
	lim := 0.0
	for key, sym := range symbols {
		pts := bysymbol[sym]
		for _, v := range pts {
			lim = math.Max(lim, math.Max(math.Abs(v.X), math.Abs(v.Y)))
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("Projection: %w", err)
		}
		r, g, b := colors(key, len(symbols))
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Shape = getShape(key)
		p.Add(s)
		p.Legend.Add(sym, s)
	}
	//same scale in both axes, centered at the origin.
	lim += 1
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	if err := p.Save(5*vg.Inch, 5*vg.Inch, fileName(plotname)); err != nil {
		return fmt.Errorf("Projection: %w", err)
	}
	return nil
}

func getShape(key int) draw.GlyphDrawer {
	switch key % 4 {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.PyramidGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

// colors returns the key-th of steps colors spread over the hue circle.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := (float64(key) * norm) + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1, 1)
}
