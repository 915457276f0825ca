/*
 * doc.go, part of gonano.
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

/*
Package nano is the main package of the gonano library. It builds atomistic models of
metallic nanoparticles by carving a crystal lattice with a convex polyhedron, and writes
the resulting clusters in common structure formats.

		**gonano Capabilities**

	    Exact decimal arithmetic, with a precision chosen by the user, for all the geometry
		involved in deciding which atoms belong to a particle (package num and the Vec type
		of package v3), so points lying on a face of the polyhedron are never lost to rounding.

	    Lazy enumeration of lattice points, with a resumable state (package lattice), and
		mapping of those points to the atoms of a unit cell. Face-centered cubic cells are supported.

	    Convex polyhedra built from face tables, with outward normals derived from the
		vertices, and a registry of common shapes (package shape).

	    Sequential and concurrent builds of clusters (Build and BuildConc), which produce
		identical results.

	    Writes mmCIF (optionally zstd-compressed) and XYZ files. Reads back the files it writes.

	    Geometric summaries of a cluster: centroid, radius, radius of gyration and radial
		histograms (package histo), and plots of those (package nanoplot).

Cartesian coordinates leave the exact world only at the end, as float64 coordinates
in a v3.Matrix, which is based on gonum's mat.Dense.
*/
package nano
