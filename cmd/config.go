package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gpush/internal/config"
	"gpush/internal/gitutil"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage gpush configuration",
		Long:  `Manage gpush configuration, such as the default push remote.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(outWriter(), "remote: %s\n", cfg.Remote)
			fmt.Fprintf(outWriter(), "verbose: %t\n", cfg.Verbose)
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set",
		Short: "Set a configuration value",
	}

	configSetRemoteCmd = &cobra.Command{
		Use:   "remote [name]",
		Short: "Set the default push remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := gitutil.ValidateRemoteName(name); err != nil {
				return err
			}

			config.SetConfigValue("remote", name)
			if err := config.SaveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(outWriter(), "Default push remote set to: %s\n", name)
			return nil
		},
	}

	configSetVerboseCmd = &cobra.Command{
		Use:   "verbose [true|false]",
		Short: "Set whether git commands are logged before execution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q, expected true or false", args[0])
			}

			config.SetConfigValue("verbose", value)
			if err := config.SaveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(outWriter(), "Verbose logging set to: %t\n", value)
			return nil
		},
	}
)

func init() {
	configSetCmd.AddCommand(configSetRemoteCmd)
	configSetCmd.AddCommand(configSetVerboseCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
