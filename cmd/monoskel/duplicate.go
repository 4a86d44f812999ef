// The `duplicate` option's file-path derivation, and a standalone
// `duplicate` subcommand that runs the mesh.WriteDuplicated helper
// without computing a skeleton.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/mesh"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [input.mesh] [output.mesh]",
	Short: "Write the input polygon twice into one mesh file, for parser/writer testing",
	Args:  cobra.ExactArgs(2),
	RunE:  runDuplicate,
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("monoskel duplicate: open %s: %w", args[0], err)
	}
	defer in.Close()

	poly, err := mesh.ParsePolygon(in)
	if err != nil {
		return err
	}

	return writeDuplicatedFile(args[1], poly)
}

// writeDuplicateMesh derives a "<stem>.duplicate<ext>" sibling of
// outputPath (ext is outputPath's own extension, ".mesh" if it has none)
// and writes poly's duplicated markup there — used by the root
// command's --duplicate flag, which names the skeleton's output path, not
// the duplicate debug file's.
func writeDuplicateMesh(outputPath string, poly *core.Polygon) error {
	return writeDuplicatedFile(duplicatePath(outputPath), poly)
}

func writeDuplicatedFile(path string, poly *core.Polygon) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("monoskel: create %s: %w", path, err)
	}
	defer out.Close()
	if err := mesh.WriteDuplicated(out, poly); err != nil {
		return fmt.Errorf("monoskel: write duplicated mesh: %w", err)
	}
	return nil
}

func duplicatePath(outputPath string) string {
	ext := ".mesh"
	if i := strings.LastIndex(outputPath, "."); i >= 0 {
		ext = outputPath[i:]
		outputPath = outputPath[:i]
	}
	return outputPath + ".duplicate" + ext
}
