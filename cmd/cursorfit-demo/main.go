package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cursorfit"
	"github.com/iw2rmb/cursorfit/internal/config"
	"github.com/iw2rmb/cursorfit/internal/debuglog"
)

const sampleText = "Long lines scroll around the cursor; the hidden parts are drawn as a short run of dots on each side.\n" +
	"    Indented lines keep their indent when split with enter.\n" +
	"界 wide graphemes and \U0001F469\u200d\U0001F469\u200d\U0001F467 families count as one unit each.\n" +
	"Esc quits."

func main() {
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Println(cursorfit.Banner("cursorfit-demo"))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := debuglog.Setup(debuglog.ParseLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer debuglog.Close()

	p := tea.NewProgram(newModel(cfg, sampleText, DefaultStyle()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		debuglog.Errorf("demo: %v", err)
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
