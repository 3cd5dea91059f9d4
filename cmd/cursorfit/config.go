package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/cursorfit/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// A broken config file must not stop us from writing a new one.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	generate := &cobra.Command{
		Use:   "generate [PATH]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.GenerateDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated default configuration at: %s\n", path)
			return nil
		},
	}
	cmd.AddCommand(generate)
	return cmd
}
