package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/texel"
	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/core/log"
)

var (
	jsonOutput bool
	maxDepth   int
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a source file (or stdin) and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the stream as JSON")
	tokenizeCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 = default)")
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
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

	depth := maxDepth
	if depth == 0 {
		depth = cfg.GetInt("scan.max_depth", 0)
	}
	opts := texel.Options{
		Logger:   logger,
		Registry: reg,
		MaxDepth: depth,
	}

	var eng *texel.Engine
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			printError("opening input", err)
			return err
		}
		defer file.Close()
		eng, err = texel.NewFromLines(texel.LinesFromReader(file), args[0], opts)
		if err != nil {
			printError("creating engine", err)
			return err
		}
	} else {
		eng, err = texel.NewFromLines(texel.LinesFromReader(os.Stdin), "<stdin>", opts)
		if err != nil {
			printError("creating engine", err)
			return err
		}
	}

	results := eng.Tokenize()

	if jsonOutput {
		objects := make([]interface{}, 0, len(results))
		for _, r := range results {
			objects = append(objects, ast.ResultJSON(r))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(objects); err != nil {
			printError("encoding output", err)
			return err
		}
	} else {
		fmt.Print(ast.DumpResults(results))
	}

	errorCount := 0
	for _, r := range results {
		if r.IsError() {
			errorCount++
		}
	}
	if errorCount > 0 {
		logger.Warn("scan finished with errors", log.Fields{"errors": errorCount})
		return fmt.Errorf("%d scan error(s)", errorCount)
	}
	return nil
}
