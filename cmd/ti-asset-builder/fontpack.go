package main

import (
	"github.com/spf13/cobra"

	"github.com/calctools/serseg/fontpack"
)

var fontpackCmd = &cobra.Command{
	Use:   "fontpack <definition> <output>",
	Short: "Build a font pack from its definition file",
	Args:  cobra.ExactArgs(2),
	Run:   buildFontpack,
}

func init() { cmd.AddCommand(fontpackCmd) }

func buildFontpack(_ *cobra.Command, args []string) {
	data, err := fontpack.BuildBinary(args[0])
	checkf(err, "build font pack %s", args[0])
	check(writeAsset(data, args[1]))
}
