/*
 * build.go, part of gonano.
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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/config"
	"github.com/rmera/gonano/nanoplot"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	ConfigFile string
	Sequential bool
	Summary    bool
	JSON       bool
	Normalize  bool
	run        *config.Run //flags write here, on top of the defaults
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts, run: config.Defaults()}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a nanoparticle and write it to a file",
		Long: `Build a nanoparticle of an FCC metal with the given shape and radius.

Settings are taken from the defaults, then from the configuration file given
with --config (YAML or JSON with comments), then from the flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd)
		},
	}

	r := opts.run
	f := cmd.Flags()
	f.StringVarP(&opts.ConfigFile, "config", "c", "", "configuration file (.yaml, .yml, .json or .jsonc)")
	f.BoolVar(&opts.Sequential, "sequential", false, "don't use concurrency")
	f.BoolVar(&opts.Summary, "summary", false, "print a geometric summary of the nanoparticle")
	f.BoolVar(&opts.JSON, "json", false, "print the summary as JSON (implies --summary)")
	f.BoolVar(&opts.Normalize, "normalize", false, "give the radial distribution as fractions of the atoms")
	f.StringVarP(&r.Element, "element", "e", r.Element, "element symbol")
	f.StringVar(&r.LatticeConstant, "lattice-constant", "", "lattice constant, A (default: tabulated)")
	f.StringVar(&r.AtomRadius, "atom-radius", "", "atomic radius, A (default: tabulated metallic radius)")
	f.IntVar(&r.Charge, "charge", r.Charge, "formal charge of each atom")
	f.StringVarP(&r.Shape, "shape", "s", r.Shape, "shape of the nanoparticle (see the shapes command)")
	f.StringVarP(&r.Radius, "radius", "r", r.Radius, "radius of the nanoparticle, A")
	f.Uint32Var(&r.Precision, "precision", r.Precision, "significant digits used in the geometry")
	f.StringVarP(&r.Output, "output", "o", r.Output, "output file")
	f.StringVar(&r.Format, "format", r.Format, "output format (cif|xyz)")
	f.BoolVar(&r.Compress, "compress", r.Compress, "compress the mmCIF output with zstd")
	f.IntVar(&r.Cpus, "cpus", r.Cpus, "number of workers (0 for all the CPUs)")
	f.IntVar(&r.Bins, "bins", r.Bins, "bins of the radial histogram")
	f.StringVar(&r.RadialPlot, "radial-plot", "", "write a plot of the radial distribution to this file")
	f.StringVar(&r.ProjectionPlot, "projection-plot", "", "write a plot of the xy projection to this file")

	return cmd
}

// settings merges the configuration file, if any, with the flags set by the user.
func settings(opts *BuildOptions, cmd *cobra.Command) (*config.Run, error) {
	if opts.ConfigFile == "" {
		if err := opts.run.Validate(); err != nil {
			return nil, err
		}
		return opts.run, nil
	}
	r, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	f := opts.run
	set("element", func() { r.Element = f.Element })
	set("lattice-constant", func() { r.LatticeConstant = f.LatticeConstant })
	set("atom-radius", func() { r.AtomRadius = f.AtomRadius })
	set("charge", func() { r.Charge = f.Charge })
	set("shape", func() { r.Shape = f.Shape })
	set("radius", func() { r.Radius = f.Radius })
	set("precision", func() { r.Precision = f.Precision })
	set("output", func() { r.Output = f.Output })
	set("format", func() { r.Format = f.Format })
	set("compress", func() { r.Compress = f.Compress })
	set("cpus", func() { r.Cpus = f.Cpus })
	set("bins", func() { r.Bins = f.Bins })
	set("radial-plot", func() { r.RadialPlot = f.RadialPlot })
	set("projection-plot", func() { r.ProjectionPlot = f.ProjectionPlot })
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func runBuild(opts *BuildOptions, cmd *cobra.Command) error {
	r, err := settings(opts, cmd)
	if err != nil {
		return err
	}
	id := uuid.New()
	log := opts.Logger().With("run", id.String())
	cell, err := r.Cell()
	if err != nil {
		return err
	}
	sh, err := r.BuildShape()
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s_%s", r.Element, strings.ReplaceAll(r.Shape, "-", "_"), r.Radius)
	bopts := r.Options(name)
	bopts.Logger(log)
	log.Info("building", "element", r.Element, "shape", r.Shape, "radius", r.Radius, "precision", r.Precision)
	start := time.Now()
	build := nano.BuildConc
	if opts.Sequential {
		build = nano.Build
	}
	cl, err := build(cmd.Context(), cell, sh, bopts)
	if err != nil {
		return err
	}
	if cl.Len() == 0 {
		log.Warn("the nanoparticle is empty, the radius may be too small")
	}
	out := r.Output
	switch r.Format {
	case "xyz":
		err = nano.XYZFileWrite(out, cl)
	default:
		err = nano.CIFFileWrite(out, cl, r.Compress)
		if r.Compress && !strings.HasSuffix(out, nano.ZstdExt) {
			out += nano.ZstdExt
		}
	}
	if err != nil {
		return err
	}
	log.Info("done", "atoms", cl.Len(), "output", out, "elapsed", time.Since(start))
	//with --json, stdout gets only the JSON document.
	report := cmd.OutOrStdout()
	if opts.JSON {
		report = cmd.ErrOrStderr()
	}
	fmt.Fprintf(report, "%d atoms written to %s (run %s)\n", cl.Len(), out, id)
	summary := opts.Summary || opts.JSON
	if cl.Len() == 0 || (!summary && r.RadialPlot == "" && r.ProjectionPlot == "") {
		return nil
	}
	S, err := nano.Summarize(cl, r.Bins)
	if err != nil {
		return err
	}
	if opts.Normalize {
		S.Radial.Normalize()
	}
	switch {
	case opts.JSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(S); err != nil {
			return err
		}
	case opts.Summary:
		fmt.Fprintln(cmd.OutOrStdout(), S)
		fmt.Fprintln(cmd.OutOrStdout(), S.Radial)
	}
	title := fmt.Sprintf("%s %s, %s A", r.Element, r.Shape, r.Radius)
	if r.RadialPlot != "" {
		if err := nanoplot.Radial(S.Radial, title, r.RadialPlot); err != nil {
			return err
		}
		log.Info("radial plot written", "file", r.RadialPlot)
	}
	if r.ProjectionPlot != "" {
		if err := nanoplot.Projection(cl, 0, 1, title, r.ProjectionPlot); err != nil {
			return err
		}
		log.Info("projection plot written", "file", r.ProjectionPlot)
	}
	return nil
}
