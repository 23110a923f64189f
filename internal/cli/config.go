package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/lsdups/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify lsdups configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDefault()
			if err != nil {
				return err
			}

			fmt.Printf("Pattern: %s\n", cfg.Scan.Pattern)
			fmt.Printf("Skip Pattern: %s\n", cfg.Scan.SkipPattern)
			fmt.Printf("Min Group Total Size: %d\n", cfg.Scan.MinGroupTotalSize)
			fmt.Printf("Verbose: %v\n", cfg.Scan.Verbose)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Excluded Dirs: %v\n", cfg.Exclude)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
