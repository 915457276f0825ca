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
Package num implements the arbitrary-precision real numbers used by gonano's
geometric kernel. A Real wraps an apd decimal (github.com/cockroachdb/apd/v3)
together with the number of significant digits it carries, so that values
built at different precisions can be detected instead of silently mixed.

Operations between Reals of different precisions panic with
ErrPrecisionMismatch: they can only come from a program error. Data coming from
outside (files, flags) should be checked with CheckPrec, which returns
a PrecisionMismatchError instead.
*/
package num
