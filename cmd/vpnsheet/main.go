// Package main provides the CLI entry point for vpnsheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/vpnsheet-go/internal/config"
	"github.com/ukaji3/vpnsheet-go/pkg/vpnsheet"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vpnsheet [output.xlsx]",
		Short: "Generate the Azure/AWS site-to-site VPN setup workbook",
		Long: `vpnsheet writes an Excel workbook with the prerequisites, Azure and AWS
setup phases, test cases and troubleshooting steps for connecting an Azure
VNet to an AWS VPC over a site-to-site VPN.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runBuild,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setup loads configuration and initializes the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [output.xlsx]",
		Short: "Write the VPN setup workbook (default " + vpnsheet.DefaultOutput + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	outputPath := cfg.Output
	if len(args) == 1 {
		outputPath = args[0]
	}

	opts := cfg.Options()
	opts.Logger = logger

	msg, err := vpnsheet.Build(outputPath, opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
