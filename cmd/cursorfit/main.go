package main

import (
	"fmt"
	"os"

	"github.com/iw2rmb/cursorfit/internal/debuglog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// PersistentPostRun is skipped on error, so the log is still open here.
		debuglog.Errorf("%v", err)
		_ = debuglog.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
