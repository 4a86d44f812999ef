// The `render` subcommand, wiring the render package's SVG output into
// the CLI so a skeleton can be inspected without a separate viewer.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monoskel/monoskel/mesh"
	"github.com/monoskel/monoskel/render"
	"github.com/monoskel/monoskel/skel"
)

var (
	renderWidth  int
	renderHeight int

	renderCmd = &cobra.Command{
		Use:   "render [input.mesh] [output.svg]",
		Short: "Compute the skeleton and render it as a static SVG picture",
		Args:  cobra.ExactArgs(2),
		RunE:  runRender,
	}
)

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", render.DefaultOptions.Width, "canvas width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", render.DefaultOptions.Height, "canvas height in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("monoskel render: open %s: %w", args[0], err)
	}
	defer in.Close()

	poly, err := mesh.ParsePolygon(in)
	if err != nil {
		return err
	}

	sk, err := skel.Compute(poly)
	if err != nil {
		return err
	}

	return render.RenderToFile(args[1], sk, render.Options{Width: renderWidth, Height: renderHeight})
}
