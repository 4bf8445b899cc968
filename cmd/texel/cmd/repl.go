package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/texel/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive token stream explorer",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}
	logger := setupLogger(cfg)

	reg, err := buildRegistry(cfg, logger)
	if err != nil {
		printError("building registry", err)
		return err
	}

	model := tui.NewModel(reg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		printError("running repl", err)
		return err
	}
	return nil
}
