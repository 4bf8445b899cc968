package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/texel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the texel version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("texel %s\n", texel.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
