package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/content"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/models"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/output"
)

func newShowCmd() *cobra.Command {
	var (
		format    string
		sheetName string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the workbook tables without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb := content.Workbook()
			if sheetName != "" {
				sheet, ok := wb.Sheet(sheetName)
				if !ok {
					return fmt.Errorf("unknown sheet %q (have %q)", sheetName, wb.SheetNames())
				}
				wb = models.Workbook{Sheets: []models.Sheet{sheet}}
			}

			var text string
			switch format {
			case "markdown", "md":
				text = output.TablesToMarkdown(wb)
			case "json":
				data, err := output.TablesToJSON(wb, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				text = string(data) + "\n"
			case "toon":
				s, err := output.TablesToTOON(wb)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				text = s + "\n"
			default:
				return fmt.Errorf("invalid format: %s (must be markdown, json, or toon)", format)
			}

			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: markdown, json, toon")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Only print this sheet")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
