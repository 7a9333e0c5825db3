package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ramsey/builder"
	"github.com/katalvlaran/ramsey/matcher"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List goal pattern names",
	Long: `List the named goal patterns with their sizes.

SYMMETRIES is the number of ways the pattern maps onto itself; a
monochromatic copy on the board is found once per symmetry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writePatterns(cmd.Context(), cmd.OutOrStdout())
	},
}

func writePatterns(ctx context.Context, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERTICES\tEDGES\tSYMMETRIES\tDESCRIPTION")
	for _, entry := range builder.Catalog() {
		g, err := builder.Pattern(entry[0])
		if err != nil {
			return err
		}
		autos, err := matcher.CountContext(ctx, g, g, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", entry[0], g.VertexCount(), g.EdgeCount(), autos, entry[1])
	}
	return w.Flush()
}
