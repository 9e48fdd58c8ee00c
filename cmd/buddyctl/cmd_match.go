package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/buddy-service/internal/export"
	"github.com/spec-kit/buddy-service/internal/render"
	"github.com/spec-kit/buddy-service/internal/roster"
	"github.com/spec-kit/buddy-service/internal/service"
)

var (
	matchFormat string
	matchSeed   uint64
	matchOut    string
)

// matchCmd pairs the roster in a file.
var matchCmd = &cobra.Command{
	Use:   "match <roster-file>",
	Short: "Compute buddy pairs for a roster file",
	Long: `Reads a .json, .yaml or .yml roster and prints the pairs.

Output formats:
  - table: stat cards and one line per pair
  - json:  the result list, ready for re-import
  - csv:   semicolon separated with a UTF-8 BOM for spreadsheets`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "table", "output format: table, json or csv")
	matchCmd.Flags().Uint64Var(&matchSeed, "seed", 0, "seed for a reproducible shuffle")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "write output to this file instead of stdout")
}

func runMatch(cmd *cobra.Command, args []string) error {
	var exportFormat export.Format
	if matchFormat != "table" {
		f, err := export.ParseFormat(matchFormat)
		if err != nil {
			return err
		}
		exportFormat = f
	}

	path := args[0]
	format, err := roster.FormatFromFilename(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()

	var opts service.RunOptions
	if cmd.Flags().Changed("seed") {
		seed := matchSeed
		opts.Seed = &seed
	}

	svc := service.NewMatchingService(service.MatchingDependencies{Logger: logger})
	run, err := svc.RunReader(cmd.Context(), file, format, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if matchOut != "" {
		f, err := os.Create(matchOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
		logger.Debug("writing output", zap.String("path", matchOut))
	}
	if exportFormat == "" {
		return render.Run(out, run)
	}
	return export.Write(out, exportFormat, run.Results)
}
