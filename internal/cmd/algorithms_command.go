package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dendrascience/dupehash/dupe"
)

// NewAlgorithmsCmd creates and returns the algorithms subcommand.
// It lists every digest algorithm the scan accepts for --hash.
func NewAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderAlgorithms(cmd.OutOrStdout())
		},
	}
}

func renderAlgorithms(w io.Writer) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Algorithm", "Digest Size"})
	for _, name := range dupe.Algorithms() {
		h, err := dupe.NewHash(name)
		if err != nil {
			continue
		}
		tw.AppendRow(table.Row{name, fmt.Sprintf("%d bits", h.Size()*8)})
	}
	fmt.Fprintln(w, tw.Render())
}
