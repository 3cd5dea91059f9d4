package main

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/cursorfit"
	"github.com/iw2rmb/cursorfit/internal/config"
	"github.com/iw2rmb/cursorfit/internal/debuglog"
)

// app holds global flags and the configuration loaded from them.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "cursorfit",
		Short:             "Fit a line of text around a cursor",
		Long:              "cursorfit decides which part of a line stays visible around the cursor, and how a line splits when ENTER is pressed.",
		Version:           cursorfit.VersionTag(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = debuglog.Close() },
	}
	root.SetVersionTemplate(cursorfit.Banner("cursorfit") + "\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, off (overrides config)")
	pf.StringVar(&a.logFile, "log-file", "", "log file path (overrides config)")

	root.AddCommand(
		a.litmusCmd(),
		a.truncateCmd(),
		a.splitCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the configuration and starts logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if err := debuglog.Setup(debuglog.ParseLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		return err
	}
	a.cfg = cfg
	debuglog.Infof("command %s", cmd.CommandPath())
	return nil
}
