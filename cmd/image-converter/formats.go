package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/image-converter/internal/model"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FORMAT\tCONTENT TYPE\tEXTENSION")
			for _, f := range model.Formats() {
				marker := ""
				if f == model.DefaultFormat {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\n", f, marker, f.ContentType(), f.Extension())
			}
			return w.Flush()
		},
	}
}
