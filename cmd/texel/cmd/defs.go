package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/texel/registry"
)

var defsCmd = &cobra.Command{
	Use:   "defs <file>...",
	Short: "Validate definition files and list their commands",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDefs,
}

func init() {
	rootCmd.AddCommand(defsCmd)
}

func runDefs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}
	logger := setupLogger(cfg)

	reg := registry.New(registry.Options{Logger: logger})
	for _, file := range args {
		if err := registry.Load(file, reg); err != nil {
			printError("loading definitions", err)
			return err
		}
	}

	for _, name := range reg.CommandNames() {
		fmt.Println(reg.Describe(name))
	}
	for _, name := range reg.EnvironmentNames() {
		fmt.Println(reg.Describe(name))
	}
	return nil
}
