/*
 * files.go, part of gonano.
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
	"strconv"
	"strings"

	"github.com/rmera/gonano/v3"
)

// XYZRead reads an XYZ stream and returns the atoms in it as a cluster. Coordinates
// are parsed with prec significant digits. The comment line, if not empty, becomes the
// name of the cluster.
func XYZRead(in io.Reader, prec uint32) (*Cluster, error) {
	xyz := bufio.NewScanner(in)
	if !xyz.Scan() {
		return nil, fmt.Errorf("XYZRead: empty or unreadable XYZ stream: %v", xyz.Err())
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil {
		return nil, fmt.Errorf("XYZRead: ill formatted number of atoms: %w", err)
	}
	if !xyz.Scan() {
		return nil, fmt.Errorf("XYZRead: missing comment line")
	}
	cl := &Cluster{Name: strings.TrimSpace(xyz.Text()), Atoms: make([]*Atom, 0, natoms)}
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, fmt.Errorf("XYZRead: expected %d atoms, found %d", natoms, i)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("XYZRead: line %d ill formed", i+3)
		}
		pos, err := v3.ParseVec(fields[1], fields[2], fields[3], prec)
		if err != nil {
			return nil, fmt.Errorf("XYZRead: line %d: %w", i+3, err)
		}
		cl.Atoms = append(cl.Atoms, &Atom{Symbol: fields[0], Pos: pos, ID: i + 1})
	}
	return cl, nil
}

// XYZFileRead reads the XYZ file xyzname.
func XYZFileRead(xyzname string, prec uint32) (*Cluster, error) {
	f, err := os.Open(xyzname)
	if err != nil {
		return nil, fmt.Errorf("XYZFileRead: %w", err)
	}
	defer f.Close()
	cl, err := XYZRead(f, prec)
	return cl, errDecorate(err, "XYZFileRead")
}

// XYZWrite writes the atoms of mol in XYZ format to out. The comment line is left empty.
func XYZWrite(out io.Writer, mol Atomer) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n\n", mol.Len())
	for i := 0; i < mol.Len(); i++ {
		a := mol.Atom(i)
		c := a.Pos.R3()
		fmt.Fprintf(w, "%-2s  %8.3f%8.3f%8.3f \n", a.Symbol, c.X, c.Y, c.Z)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("XYZWrite: %w", err)
	}
	return nil
}

// XYZFileWrite writes mol in an XYZ file with name xyzname which will
// be created for that. If the file exist it will be overwritten.
func XYZFileWrite(xyzname string, mol Atomer) (err error) {
	out, err := os.Create(xyzname)
	if err != nil {
		return fmt.Errorf("XYZFileWrite: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("XYZFileWrite: %w", cerr)
		}
	}()
	return errDecorate(XYZWrite(out, mol), "XYZFileWrite")
}
