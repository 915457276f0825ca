/*
 * cif.go, part of gonano.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/v3"
)

var tl func(string) string = strings.ToLower
var hp func(string, string) bool = strings.HasPrefix

// ZstdExt is the extension of zstd-compressed files.
const ZstdExt = ".zst"

// coordinates are written with 3 decimals, without negative zeros.
func fmtCoord(r num.Real) string {
	s := fmt.Sprintf("%.3f", r.Float64())
	if s == "-0.000" {
		s = "0.000"
	}
	return s
}

// blockName returns the mmCIF data block name for a file name: the base name without extensions.
func blockName(name string) string {
	n := filepath.Base(name)
	n = strings.TrimSuffix(n, ZstdExt)
	n = strings.TrimSuffix(n, filepath.Ext(n))
	return strings.ReplaceAll(n, " ", "_")
}

// CIFWrite writes the cluster cl in mmCIF format to out, in a data block called name
// (or the name of the cluster, if name is empty). The unit cell goes in the header,
// followed by one _atom_site row per atom.
func CIFWrite(out io.Writer, cl *Cluster, name ...string) error {
	if cl == nil {
		return &BuildError{message: "nil cluster", deco: []string{"CIFWrite"}, critical: true}
	}
	n := cl.Name
	if len(name) > 0 && name[0] != "" {
		n = name[0]
	}
	if n == "" {
		n = "gonano"
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "data_%s\n#\n", n)
	if c := cl.Cell; c != nil {
		fmt.Fprintf(w, "_cell.length_a    %s\n", c.A)
		fmt.Fprintf(w, "_cell.length_b    %s\n", c.B)
		fmt.Fprintf(w, "_cell.length_c    %s\n", c.C)
		fmt.Fprintf(w, "_cell.angle_alpha %s\n", c.Alpha)
		fmt.Fprintf(w, "_cell.angle_beta  %s\n", c.Beta)
		fmt.Fprintf(w, "_cell.angle_gamma %s\n", c.Gamma)
		fmt.Fprintf(w, "#\n_symmetry.space_group_name_H-M '%s'\n#\n", c.SpaceGroup)
	}
	w.WriteString("loop_\n")
	w.WriteString("_atom_site.group_PDB\n")
	w.WriteString("_atom_site.id\n")
	w.WriteString("_atom_site.type_symbol\n")
	w.WriteString("_atom_site.Cartn_x\n_atom_site.Cartn_y\n_atom_site.Cartn_z\n")
	w.WriteString("_atom_site.pdbx_formal_charge\n")
	for _, a := range cl.Atoms {
		fmt.Fprintf(w, "HETATM %d %s %s %s %s %d\n", a.ID, a.Symbol, fmtCoord(a.Pos.X), fmtCoord(a.Pos.Y), fmtCoord(a.Pos.Z), a.Charge)
	}
	w.WriteString("#\n")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("CIFWrite: %w", err)
	}
	return nil
}

// CIFFileWrite writes cl to the mmCIF file name. The data block is named after the file.
// If compress is true, or name ends in ".zst", the file is compressed with zstd, and the
// extension is added to name if it is missing.
func CIFFileWrite(name string, cl *Cluster, compress bool) (err error) {
	if compress && !strings.HasSuffix(name, ZstdExt) {
		name += ZstdExt
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("CIFFileWrite: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("CIFFileWrite: %w", cerr)
		}
	}()
	if !strings.HasSuffix(name, ZstdExt) {
		return errDecorate(CIFWrite(f, cl, blockName(name)), "CIFFileWrite")
	}
	z, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("CIFFileWrite: %w", err)
	}
	if err = CIFWrite(z, cl, blockName(name)); err != nil {
		z.Close()
		return errDecorate(err, "CIFFileWrite")
	}
	if err = z.Close(); err != nil {
		return fmt.Errorf("CIFFileWrite: %w", err)
	}
	return nil
}

type cifmap map[string]int

// adds i to the map[string] entry, if it exists. If not,
// does nothing. Returns the map.
func (m cifmap) add(s string, i int) cifmap {
	s = tl(strings.TrimSpace(s))
	if _, ok := m[s]; ok {
		m[s] = i
	}
	return m
}

// returns the integer corresponding to the given string in the map
// or -1 if the string is not a key in the map.
func (m cifmap) get(s string) int {
	if i, ok := m[s]; ok {
		return i
	}
	return -1
}

func newCifmap() cifmap {
	return cifmap{
		"_atom_site.group_pdb":          -1,
		"_atom_site.id":                 -1,
		"_atom_site.type_symbol":        -1,
		"_atom_site.cartn_x":            -1,
		"_atom_site.cartn_y":            -1,
		"_atom_site.cartn_z":            -1,
		"_atom_site.pdbx_formal_charge": -1,
	}
}

// cifFillAtom reads the atom in the fields of an _atom_site row.
func cifFillAtom(fields []string, m cifmap, prec uint32) (*Atom, error) {
	field := func(s string) (string, error) {
		k := m.get(s)
		if k < 0 {
			return "", fmt.Errorf("field %s not present", s)
		}
		if k >= len(fields) {
			return "", fmt.Errorf("index out of range: %d, %v", k, fields)
		}
		return fields[k], nil
	}
	at := new(Atom)
	var err error
	if at.Symbol, err = field("_atom_site.type_symbol"); err != nil {
		return nil, err
	}
	id, err := field("_atom_site.id")
	if err != nil {
		return nil, err
	}
	if at.ID, err = strconv.Atoi(id); err != nil {
		return nil, fmt.Errorf("couldn't parse ID from %s: %w", id, err)
	}
	var c [3]string
	for i, v := range []string{"_atom_site.cartn_x", "_atom_site.cartn_y", "_atom_site.cartn_z"} {
		if c[i], err = field(v); err != nil {
			return nil, err
		}
	}
	if at.Pos, err = v3.ParseVec(c[0], c[1], c[2], prec); err != nil {
		return nil, fmt.Errorf("couldn't parse coordinates from %v: %w", c, err)
	}
	//Charge, but we won't do anything if we somehow can't read it.
	if q, err := field("_atom_site.pdbx_formal_charge"); err == nil {
		if n, err := strconv.Atoi(q); err == nil {
			at.Charge = n
		}
	}
	return at, nil
}

// CIFRead reads a cluster, as written by CIFWrite, from an mmCIF stream.
// Numbers are parsed with prec significant digits. The unit cell, if present, is read,
// but the basis can't be recovered from the file, so it is left empty.
func CIFRead(in io.Reader, prec uint32) (*Cluster, error) {
	s := bufio.NewScanner(in)
	m := newCifmap()
	cl := new(Cluster)
	cellvals := make(map[string]string)
	var reading, loop bool
	field := 0
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || hp(line, "#") {
			continue
		}
		l := tl(line)
		switch {
		case hp(l, "data_"):
			cl.Name = line[len("data_"):]
		case hp(l, "loop_"):
			loop = true
			reading = false
		case hp(l, "_atom_site.") && loop:
			reading = true
			m.add(l, field)
			field++
		case hp(l, "_cell.") || hp(l, "_symmetry."):
			loop = false
			f := strings.SplitN(line, " ", 2)
			if len(f) == 2 {
				cellvals[tl(f[0])] = strings.Trim(strings.TrimSpace(f[1]), "'\"")
			}
		case hp(l, "_"):
			loop = false
			reading = false
		case reading:
			at, err := cifFillAtom(strings.Fields(line), m, prec)
			if err != nil {
				return nil, fmt.Errorf("CIFRead: couldn't read atom %d: %w", len(cl.Atoms)+1, err)
			}
			cl.Atoms = append(cl.Atoms, at)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("CIFRead: %w", err)
	}
	if len(cellvals) > 0 {
		cell, err := cifCell(cellvals, prec)
		if err != nil {
			return nil, fmt.Errorf("CIFRead: %w", err)
		}
		cl.Cell = cell
	}
	return cl, nil
}

func cifCell(vals map[string]string, prec uint32) (*lattice.UnitCell, error) {
	cell := &lattice.UnitCell{SpaceGroup: vals["_symmetry.space_group_name_h-m"]}
	targets := []struct {
		key string
		dst *num.Real
	}{
		{"_cell.length_a", &cell.A},
		{"_cell.length_b", &cell.B},
		{"_cell.length_c", &cell.C},
		{"_cell.angle_alpha", &cell.Alpha},
		{"_cell.angle_beta", &cell.Beta},
		{"_cell.angle_gamma", &cell.Gamma},
	}
	for _, t := range targets {
		v, ok := vals[t.key]
		if !ok {
			return nil, fmt.Errorf("missing %s", t.key)
		}
		r, err := num.Parse(v, prec)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse %s from %s: %w", t.key, v, err)
		}
		*t.dst = r
	}
	if cell.SpaceGroup == "F m -3 m" {
		cell.Kind = lattice.KindFCC
	}
	return cell, nil
}

// CIFFileRead reads a cluster from the mmCIF file name, which can be zstd-compressed
// if its name ends in ".zst".
func CIFFileRead(name string, prec uint32) (*Cluster, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("CIFFileRead: %w", err)
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(name, ZstdExt) {
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("CIFFileRead: %w", err)
		}
		defer z.Close()
		in = z
	}
	cl, err := CIFRead(in, prec)
	return cl, errDecorate(err, "CIFFileRead")
}
