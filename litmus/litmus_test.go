package litmus

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/cursorfit/internal/grapheme"
	"github.com/iw2rmb/cursorfit/layout"
)

func TestDefaultSuites_AllPass(t *testing.T) {
	suites, err := DefaultSuites()
	require.NoError(t, err)
	require.Len(t, suites, 3)
	assert.Equal(t, "enter", suites[0].Name)
	assert.Equal(t, "overflow-narrow", suites[1].Name)
	assert.Equal(t, "overflow", suites[2].Name)

	for _, s := range suites {
		rep := Run(s)
		require.NotEmpty(t, rep.Results, s.Name)
		for _, res := range rep.Results {
			assert.Truef(t, res.Pass, "%s case %d: input %q got %q want %q err %v",
				s.Name, res.Index, res.Input, res.Got, res.Expected, res.Err)
		}
		assert.True(t, rep.OK())
		assert.Equal(t, len(rep.Results), rep.Passed())
	}
}

func TestDefaultSuites_UnjudgedCasesRecordOutput(t *testing.T) {
	suites, err := DefaultSuites()
	require.NoError(t, err)

	rep := Run(suites[1])
	require.Len(t, rep.Results, 7)
	for _, res := range rep.Results {
		assert.Empty(t, res.Expected)
		require.NoError(t, res.Err)
		// Ten units fit a ten-column viewport, so the line is drawn whole.
		assert.Equal(t, res.Input, res.Got)
	}
}

func TestLoadSuite(t *testing.T) {
	src := `
name = "inline"
kind = "enter"

[options]
marker = "~"

[[cases]]
input = "~~a|b"
expected = "~~a\n~~|b"
`
	s, err := LoadSuite(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "inline", s.Name)
	assert.Equal(t, KindEnter, s.Kind)
	assert.Equal(t, "~", s.Options.Marker)
	assert.Equal(t, "|", s.Options.Cursor, "unset cursor takes the default")
	require.Len(t, s.Cases, 1)
	assert.Equal(t, "~~a\n~~|b", s.Cases[0].Expected)

	rep := Run(s)
	assert.True(t, rep.OK())
}

func TestLoadSuite_UnknownKind(t *testing.T) {
	_, err := LoadSuite(strings.NewReader(`kind = "paste"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestLoadSuite_BadTOML(t *testing.T) {
	_, err := LoadSuite(strings.NewReader(`kind = `))
	require.Error(t, err)
}

func TestLoadFile_NamesSuiteAfterFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "narrow.toml")
	src := `
kind = "overflow"

[options]
viewport_width = 4
margin = 2
ellipsis_max = 1

[[cases]]
input = "abc|defgh"
expected = ".bc|de."
`
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))

	s, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "narrow", s.Name)

	rep := Run(s)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, ".bc|de.", rep.Results[0].Got)
	assert.True(t, rep.Results[0].Pass)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseCursor(t *testing.T) {
	units, at, err := ParseCursor("éx|y", "|")
	require.NoError(t, err)
	assert.Equal(t, 2, at)
	assert.Equal(t, []string{"é", "x", "y"}, units)

	_, _, err = ParseCursor("abc", "|")
	assert.True(t, errors.Is(err, ErrNoCursor))
}

func TestDraw_GraphemeUnits(t *testing.T) {
	got, err := Draw(KindEnter, "  界|x", Options{Marker: " "})
	require.NoError(t, err)
	assert.Equal(t, "  界\n  |x", got)

	got, err = Draw(KindOverflow, "界界界|界界界", Options{ViewportWidth: 4, Margin: 1, EllipsisMax: 1})
	require.NoError(t, err)
	assert.Equal(t, ".界|界.", got)
}

func TestDrawOverflow_MultiByteEllipsis(t *testing.T) {
	units := grapheme.Split("abcdefghij")
	got, err := DrawOverflow(units, 5, Options{ViewportWidth: 4, Margin: 2, EllipsisMax: 1, Ellipsis: "…"})
	require.NoError(t, err)
	assert.Equal(t, "…de|fg…", got)
}

func TestDraw_Errors(t *testing.T) {
	_, err := Draw(KindEnter, "no cursor", Options{})
	assert.True(t, errors.Is(err, ErrNoCursor))

	_, err = Draw(Kind("other"), "a|b", Options{})
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = DrawEnter([]string{"a"}, 3, Options{})
	assert.True(t, errors.Is(err, layout.ErrCursorOutOfRange))
}

func TestRun_RecordsFailures(t *testing.T) {
	s := Suite{
		Name: "mixed",
		Kind: KindEnter,
		Cases: []Case{
			{Input: "a|b", Expected: "a\n|b"},
			{Input: "a|b", Expected: "wrong"},
			{Input: "nocursor", Expected: "x"},
			{Input: "ab|"},
		},
	}
	rep := Run(s)
	require.Len(t, rep.Results, 4)
	assert.Equal(t, []int{2, 3}, rep.Failures())
	assert.Equal(t, 2, rep.Passed())
	assert.False(t, rep.OK())
	assert.True(t, errors.Is(rep.Results[2].Err, ErrNoCursor))
	assert.Equal(t, "ab\n|", rep.Results[3].Got)
}

func asciiStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyle(r)
}

func TestRender_PassingReport(t *testing.T) {
	rep := Run(Suite{
		Name:  "one",
		Kind:  KindEnter,
		Cases: []Case{{Input: "a|b", Expected: "a\n|b"}},
	})
	got := Render(rep, asciiStyle())

	want := strings.Join([]string{
		"test 1:",
		"─────[before]─────",
		"a│b",
		"─────[after]─────",
		"a",
		"│b",
		"────[:)]────",
		"",
		"one: all 1 succeeded",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_FailingReportShowsExpected(t *testing.T) {
	rep := Run(Suite{
		Name:  "bad",
		Kind:  KindEnter,
		Cases: []Case{{Input: "a|b", Expected: "a\nb|"}},
	})
	got := Render(rep, asciiStyle())

	assert.Contains(t, got, "────[:(]────")
	assert.Contains(t, got, "─────[expected]─────\na\nb│\n")
	assert.Contains(t, got, "bad: failures [1]")
}

func TestRender_Error(t *testing.T) {
	rep := Run(Suite{Name: "err", Kind: KindEnter, Cases: []Case{{Input: "ab"}}})
	got := Render(rep, asciiStyle())
	assert.Contains(t, got, "error: litmus: no cursor in input")
}
