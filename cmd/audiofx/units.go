package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaban/audiofx/components"
)

// unitsCmd represents the units command
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the registered audio components",
	Run: func(cmd *cobra.Command, args []string) {
		printUnits()
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func printUnits() {
	for _, d := range components.All() {
		fmt.Printf("%s (%s/%s/%s)\n", d.Name, d.Type, d.Subtype, d.ManufacturerID)
		for _, p := range d.Parameters {
			access := "rw"
			if !p.IsWritable {
				access = "ro"
			}
			fmt.Printf("  [%s] %-20s %-8s range [%g, %g] default %g\n",
				access, p.Identifier, p.Unit, p.MinValue, p.MaxValue, p.DefaultValue)
		}
	}
}
