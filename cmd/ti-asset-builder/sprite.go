package main

import (
	"github.com/spf13/cobra"

	"github.com/calctools/serseg/sprite"
)

var spriteCmd = &cobra.Command{
	Use:   "sprite <definition> <output>",
	Short: "Build a sprite from its definition file",
	Args:  cobra.ExactArgs(2),
	Run:   buildSprite,
}

func init() { cmd.AddCommand(spriteCmd) }

func buildSprite(_ *cobra.Command, args []string) {
	data, err := sprite.BuildBinary(args[0])
	checkf(err, "build sprite %s", args[0])
	check(writeAsset(data, args[1]))
}
