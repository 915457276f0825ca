/*
 * radial.go, part of gonano.
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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/nanoplot"
)

// RadialOptions holds flags for the radial command.
type RadialOptions struct {
	*RootOptions
	Output    string
	Title     string
	Normalize bool
}

// NewRadialCommand creates the command that plots the radial distribution stored in a
// JSON summary, as printed by build --json.
func NewRadialCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RadialOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:   "radial <summary.json>",
		Short: "Plot the radial distribution of a summary written by build --json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			S := new(nano.Summary)
			if err := json.Unmarshal(data, S); err != nil {
				return fmt.Errorf("reading summary %s: %w", args[0], err)
			}
			if opts.Normalize {
				S.Radial.Normalize()
			}
			title := opts.Title
			if title == "" {
				title = fmt.Sprintf("%d atoms", S.Atoms)
			}
			if err := nanoplot.Radial(S.Radial, title, opts.Output); err != nil {
				return err
			}
			opts.Logger().Info("radial plot written", "file", opts.Output, "atoms", S.Atoms)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "radial.png", "plot file")
	cmd.Flags().StringVar(&opts.Title, "title", "", "plot title (default: the number of atoms)")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "plot fractions of the atoms instead of counts")
	return cmd
}
