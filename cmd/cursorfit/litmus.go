package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/cursorfit/internal/debuglog"
	"github.com/iw2rmb/cursorfit/litmus"
)

var errLitmusFailed = errors.New("litmus cases failed")

func (a *app) litmusCmd() *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "litmus [suite.toml ...]",
		Short: "Run litmus suites (built-in suites when no file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := loadSuites(args)
			if err != nil {
				return err
			}

			style := litmus.DefaultStyle()
			style.Cursor = a.cfg.Litmus.Cursor
			style.PrettyCursor = a.cfg.Litmus.PrettyCursor

			out := cmd.OutOrStdout()
			failed := 0
			for _, s := range suites {
				rep := litmus.Run(s)
				if !rep.OK() {
					failed++
				}
				if summary {
					fmt.Fprintf(out, "%s: %d/%d passed\n", rep.Suite, rep.Passed(), len(rep.Results))
					continue
				}
				fmt.Fprint(out, litmus.Render(rep, style))
			}

			if failed > 0 {
				debuglog.Errorf("litmus: %d of %d suites failed", failed, len(suites))
				return fmt.Errorf("%w: %d of %d suites", errLitmusFailed, failed, len(suites))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print one line per suite")
	return cmd
}

func loadSuites(paths []string) ([]litmus.Suite, error) {
	if len(paths) == 0 {
		return litmus.DefaultSuites()
	}
	suites := make([]litmus.Suite, 0, len(paths))
	for _, p := range paths {
		s, err := litmus.LoadFile(p)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}
