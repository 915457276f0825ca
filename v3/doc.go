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
Package v3 implements the 3D vector types of gonano.

Vec is an immutable 3-component vector of arbitrary-precision reals (see the num package).
It is the type the geometric kernel works with: face normals, half-space tests and lattice
coordinates are all Vecs, so that points sitting exactly on a face plane are classified
exactly.

Matrix is a row-major Nx3 float64 matrix, based on gonum's (gonum.org/v1/gonum/mat) Dense type,
with some additional restrictions because of the fixed number of columns. It is used to
hand the final Cartesian coordinates of a nanoparticle to writers and to the statistics
functions, where arbitrary precision is no longer needed.
*/
package v3
