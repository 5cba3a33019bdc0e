package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/output"
	"go.uber.org/zap"
)

type inspectFlags struct {
	outputPath string
	pretty     bool
	mode       string
	format     string
	sheetsDir  string
}

func newInspectCmd() *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Read a workbook back as structured data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&flags.mode, "mode", "standard", "Inspection mode: light, standard, verbose")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format: json, toon, markdown")
	cmd.Flags().StringVar(&flags.sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")

	return cmd
}

func runInspect(cmd *cobra.Command, inputPath string, flags inspectFlags) error {
	mode, ok := vpnsheet.ParseMode(flags.mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", flags.mode)
	}

	wb, err := vpnsheet.Inspect(inputPath, vpnsheet.InspectOptions{Mode: mode, Logger: logger})
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	var data []byte
	switch flags.format {
	case "json":
		data, err = output.ToJSON(wb, flags.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	case "toon":
		s, err := output.ToTOON(wb)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = []byte(s)
	case "markdown", "md":
		data = []byte(output.ToMarkdown(wb))
	default:
		return fmt.Errorf("invalid format: %s (must be json, toon, or markdown)", flags.format)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Inspection written", zap.String("path", flags.outputPath))
	} else if flags.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if flags.sheetsDir != "" {
		if err := writeSheetFiles(wb, flags.sheetsDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
