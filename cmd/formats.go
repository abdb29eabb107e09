package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/osu-libraries/bibconv/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List registered format plugins",
	RunE: func(_ *cobra.Command, _ []string) error {
		names := format.List()
		sort.Strings(names)
		for _, n := range names {
			f, _ := format.Get(n)
			fmt.Printf("%-16s %s\n", n, f.Description())
		}
		return nil
	},
}
