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
Package shape implements the convex polyhedra that gonano carves nanoparticles with.

A Shape is nothing but a list of faces, each with an anchor vertex and an outward unit
normal. A point is inside the shape if it is in the inner (closed) half-space of every
face. All the shape-specific knowledge lives in the face tables: a Builder is a function
that, given a radius, returns the vertices of every face. Builders are registered by name,
so new solids can be added without touching the containment code.
*/
package shape
