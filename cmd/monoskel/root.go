// The cobra root command and its flags.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/mesh"
	"github.com/monoskel/monoskel/skel"
	"github.com/monoskel/monoskel/skelcfg"
)

var (
	flagOutput    string
	flagNotXMon   bool
	flagDuplicate bool
	flagTimings   string
	flagVerbose   bool

	rootCmd = &cobra.Command{
		Use:   "monoskel [input.mesh]",
		Short: "Compute the weighted straight skeleton of a monotone polygon",
		Long: `monoskel reads a graph-markup polygon description, computes its
weighted straight skeleton, and writes the result as a mesh file.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompute,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "out.mesh", "output mesh path")
	rootCmd.Flags().BoolVar(&flagNotXMon, "not-x-mon", false, "run the monotonicity analyzer instead of assuming x-axis monotonicity")
	rootCmd.Flags().BoolVar(&flagDuplicate, "duplicate", false, "also write a duplicated-input debug mesh alongside the output")
	rootCmd.Flags().StringVar(&flagTimings, "timings", "", "append a timing CSV row to this path")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log intermediate stages")

	rootCmd.AddCommand(duplicateCmd)
}

// exitCodeFor maps a top-level error to the process exit code: 0 only on
// success, a distinct non-zero code per failure kind otherwise.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, skel.ErrNotMonotone):
		return 2
	case errors.Is(err, skel.ErrNumericInconsistency):
		return 3
	case errors.Is(err, mesh.ErrMalformedLine), errors.Is(err, mesh.ErrUnknownVertex), errors.Is(err, mesh.ErrNotAClosedCycle),
		errors.Is(err, core.ErrEmptyPolygon), errors.Is(err, core.ErrVertexWeightMismatch),
		errors.Is(err, core.ErrNonPositiveWeight), errors.Is(err, core.ErrDegenerateEdge),
		errors.Is(err, core.ErrVertexNotVisitedTwice):
		return 4
	default:
		return 1
	}
}

func configFromFlags(inputPath string) skelcfg.Config {
	return skelcfg.New(
		skelcfg.WithFileName(inputPath),
		skelcfg.WithOutputFileName(flagOutput),
		skelcfg.WithNotXMon(flagNotXMon),
		skelcfg.WithDuplicate(flagDuplicate),
		skelcfg.WithTimings(flagTimings),
		skelcfg.WithVerbose(flagVerbose),
	)
}
