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
Package lattice enumerates crystal lattice points and maps them to the atoms of a unit cell.

The Enumerator walks, lazily, a cubic grid of fractional coordinates from -R to R in each
dimension (R being the radius, rounded up) with x varying fastest. The step of the grid is half
the lattice spacing, so every basis position of a face-centered-cubic cell is visited. Most of the
visited points are not atomic positions: the Mapper tells which are, and which basis atom
sits there.

The state of an enumeration is an explicit Cursor value, which can be saved and resumed, or
stepped with the pure Advance function.
*/
package lattice
