package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/texel/core/config"
	"github.com/msto63/texel/core/log"
	"github.com/msto63/texel/registry"
)

var (
	cfgFile  string
	verbose  bool
	defFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "texel",
	Short: "texel - TeX-like markup tokenizer",
	Long: `texel tokenizes TeX/LaTeX-like markup: backslash commands with
typed arguments, brace groups, comments and environments.

Commands:
  tokenize - tokenize a file or stdin and print the token stream
  defs     - inspect command/environment definition files
  repl     - interactive token stream explorer
  version  - print the version`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringArrayVar(&defFiles, "defs", nil, "definition file (repeatable)")
}

// loadConfig loads the --config file, or returns an empty config when no
// file was given
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.LoadFromString("", config.FormatTOML)
	}
	return config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "TEXEL",
	})
}

// setupLogger builds the CLI logger from config and the verbose flag
func setupLogger(cfg *config.Config) *log.Logger {
	level := log.LevelInfo
	if parsed, err := log.ParseLevel(cfg.GetString("log.level", "info")); err == nil {
		level = parsed
	}
	if verbose {
		level = log.LevelDebug
	}

	format := log.FormatConsole
	if parsed, err := log.ParseFormat(cfg.GetString("log.format", "console")); err == nil {
		format = parsed
	}

	return log.GetDefault().
		WithName("texel-cli").
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr)
}

// buildRegistry creates a registry and loads every definition file named
// on the command line or in the config
func buildRegistry(cfg *config.Config, logger *log.Logger) (*registry.Registry, error) {
	reg := registry.New(registry.Options{Logger: logger})

	files := append(cfg.GetStringSlice("defs.files"), defFiles...)
	for _, file := range files {
		if err := registry.Load(file, reg); err != nil {
			return nil, fmt.Errorf("load definitions %s: %w", file, err)
		}
		logger.Debug("definitions loaded", log.Fields{"file": file})
	}

	return reg, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
