package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet/content"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [input.xlsx]",
		Short: "Check a workbook against the built-in tables and layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cfg.Options()
			opts.Logger = logger

			issues, err := vpnsheet.Verify(args[0], content.Workbook(), opts)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d issue(s) found in %s", len(issues), args[0])
			}

			fmt.Fprintf(out, "%s: OK\n", args[0])
			return nil
		},
	}
}
