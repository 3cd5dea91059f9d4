// Package litmus checks layout decisions against hand-written expectations.
//
// A litmus string is a line of text with the cursor drawn into it, e.g.
// "int x|= 0". Suites pair an input litmus with the litmus the layout is
// expected to produce, and are stored as TOML.
package litmus

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/cursorfit/layout"
)

var (
	ErrNoCursor    = errors.New("litmus: no cursor in input")
	ErrUnknownKind = errors.New("litmus: unknown suite kind")
)

// Kind selects the layout operation a suite exercises.
type Kind string

const (
	// KindEnter runs layout.NewlineSplit and renders both rows.
	KindEnter Kind = "enter"
	// KindOverflow runs layout.TruncationWindow and renders the visible window.
	KindOverflow Kind = "overflow"
)

// Options are per-suite layout parameters. Zero strings take the defaults
// from DefaultOptions.
type Options struct {
	ViewportWidth int `toml:"viewport_width"`
	Margin        int `toml:"margin"`
	EllipsisMax   int `toml:"ellipsis_max"`

	Marker   string `toml:"marker"`
	Ellipsis string `toml:"ellipsis"`
	Cursor   string `toml:"cursor"`
}

// DefaultOptions returns the options used for unset suite fields.
func DefaultOptions() Options {
	return Options{
		ViewportWidth: 10,
		Margin:        4,
		EllipsisMax:   3,
		Marker:        " ",
		Ellipsis:      ".",
		Cursor:        "|",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Marker == "" {
		o.Marker = d.Marker
	}
	if o.Ellipsis == "" {
		o.Ellipsis = d.Ellipsis
	}
	if o.Cursor == "" {
		o.Cursor = d.Cursor
	}
	return o
}

func (o Options) truncate() layout.TruncateOptions {
	return layout.TruncateOptions{
		ViewportWidth: o.ViewportWidth,
		Margin:        o.Margin,
		EllipsisMax:   o.EllipsisMax,
	}
}

// Case is one litmus input and the litmus it should produce. An empty
// Expected records the output without judging it.
type Case struct {
	Input    string `toml:"input"`
	Expected string `toml:"expected"`
}

type Suite struct {
	Name    string  `toml:"name"`
	Kind    Kind    `toml:"kind"`
	Options Options `toml:"options"`
	Cases   []Case  `toml:"cases"`
}

//go:embed suites/*.toml
var builtinSuites embed.FS

// LoadSuite decodes a TOML suite.
func LoadSuite(r io.Reader) (Suite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Suite{}, fmt.Errorf("reading suite: %w", err)
	}
	return parseSuite(data)
}

// LoadFile reads a suite from path. A suite without a name is named after
// the file.
func LoadFile(p string) (Suite, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Suite{}, fmt.Errorf("reading suite: %w", err)
	}
	s, err := parseSuite(data)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", p, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}
	return s, nil
}

// DefaultSuites returns the built-in ENTER and overflow suites, ordered by
// file name.
func DefaultSuites() ([]Suite, error) {
	entries, err := builtinSuites.ReadDir("suites")
	if err != nil {
		return nil, fmt.Errorf("listing built-in suites: %w", err)
	}

	suites := make([]Suite, 0, len(entries))
	for _, e := range entries {
		data, err := builtinSuites.ReadFile(path.Join("suites", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading built-in suite %s: %w", e.Name(), err)
		}
		s, err := parseSuite(data)
		if err != nil {
			return nil, fmt.Errorf("parsing built-in suite %s: %w", e.Name(), err)
		}
		suites = append(suites, s)
	}
	return suites, nil
}

func parseSuite(data []byte) (Suite, error) {
	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parsing suite: %w", err)
	}
	switch s.Kind {
	case KindEnter, KindOverflow:
	default:
		return Suite{}, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	s.Options = s.Options.withDefaults()
	return s, nil
}
