/*
 * list.go, part of gonano.
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

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/lattice"
	"github.com/rmera/gonano/num"
	"github.com/rmera/gonano/shape"
)

// NewShapesCommand creates the command that lists the available shapes.
func NewShapesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the shapes nanoparticles can be built with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range shape.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

// NewElementsCommand creates the command that lists the elements with tabulated FCC data.
func NewElementsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the elements with a tabulated FCC lattice constant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range nano.Elements() {
				a, err := nano.LatticeConstant(e, num.DefaultPrec)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-2s %s\n", e, a)
			}
			return nil
		},
	}
}

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	Step      string
	Precision uint32
}

// NewCountCommand creates the command that prints how many lattice points a scan visits.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "count <radius>",
		Short: "Print the number of lattice points scanned for a radius in lattice units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := num.Parse(args[0], opts.Precision)
			if err != nil {
				return err
			}
			step, err := num.Parse(opts.Step, opts.Precision)
			if err != nil {
				return err
			}
			n, err := lattice.Count(r, step)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(n))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Step, "step", "0.5", "grid step, in lattice units")
	cmd.Flags().Uint32Var(&opts.Precision, "precision", num.DefaultPrec, "significant digits")
	return cmd
}
