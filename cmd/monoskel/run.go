// The root command's RunE — wires mesh parsing, monotonicity
// assumption/analysis, skeleton computation, and mesh writing into one
// pipeline, logging each stage via log/slog when --verbose is set.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/monoskel/monoskel/mesh"
	"github.com/monoskel/monoskel/skel"
	"github.com/monoskel/monoskel/skelcfg"
)

func runCompute(cmd *cobra.Command, args []string) error {
	cfg := configFromFlags(args[0])

	logger := newLogger(cfg.Verbose)

	if _, err := os.Stat(cfg.FileName); err != nil {
		return fmt.Errorf("monoskel: %s: %w", cfg.FileName, err)
	}

	in, err := os.Open(cfg.FileName)
	if err != nil {
		return fmt.Errorf("monoskel: open %s: %w", cfg.FileName, err)
	}
	defer in.Close()

	logger.Info("parsing input", "file", cfg.FileName)
	poly, err := mesh.ParsePolygon(in)
	if err != nil {
		return err
	}

	start := time.Now()
	logger.Info("computing skeleton", "vertices", poly.N(), "analyze_monotonicity", cfg.NotXMon)
	sk, err := skel.Compute(poly, skel.ComputeOptions{AnalyzeMonotonicity: cfg.NotXMon})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Info("skeleton computed", "elapsed", elapsed, "nodes", sk.Nodes.Len(), "arcs", sk.Arcs.Len())

	out, err := os.Create(cfg.OutputFileName)
	if err != nil {
		return fmt.Errorf("monoskel: create %s: %w", cfg.OutputFileName, err)
	}
	defer out.Close()
	if err := mesh.WriteMesh(out, sk); err != nil {
		return fmt.Errorf("monoskel: write mesh: %w", err)
	}
	logger.Info("wrote mesh", "path", cfg.OutputFileName)

	if cfg.Duplicate {
		if err := writeDuplicateMesh(cfg.OutputFileName, poly); err != nil {
			return err
		}
	}

	if cfg.Timings {
		row := skelcfg.NewTimingRow(cfg.FileName, poly.N())
		row.TotalMicros = skelcfg.Micros(elapsed)
		if err := skelcfg.AppendTimingRow(cfg.TimingsPath, row); err != nil {
			return fmt.Errorf("monoskel: append timing row: %w", err)
		}
	}

	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
