package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/config"
)

func clockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Show the digital clock",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if twelve, _ := cmd.Flags().GetBool("12h"); twelve {
				cfg.Clock.Use24Hour = false
			}

			if noTUI, _ := cmd.Flags().GetBool("no-tui"); noTUI {
				printClock(cmd.OutOrStdout(), time.Now(), cfg.Clock.Use24Hour)
				return nil
			}

			ctx, cancel := signalContext()
			defer cancel()
			return runTUI(ctx, cfg, newDashboard(ctx, cfg, true, false))
		},
	}
	cmd.Flags().Bool("12h", false, "start in 12-hour mode (overrides config)")
	cmd.Flags().Bool("no-tui", false, "print the current time once and exit")
	return cmd
}

func jokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "joke",
		Short: "Show a random joke",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			if noTUI, _ := cmd.Flags().GetBool("no-tui"); noTUI {
				return printJoke(ctx, cmd.OutOrStdout(), newJokeClient(cfg))
			}
			return runTUI(ctx, cfg, newDashboard(ctx, cfg, false, true))
		},
	}
	cmd.Flags().Bool("no-tui", false, "fetch one joke, print it, and exit")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create widgets.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

// loadConfig loads the file named by --config, or searches for one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
