package layout

import (
	"errors"
	"strings"
	"testing"
)

// splitLitmus runs NewlineSplit on a litmus string where '|' marks the cursor
// and renders the result the same way, with '\n' between rows.
func splitLitmus(t *testing.T, litmus string, marker byte) (Split[byte], string) {
	t.Helper()

	cursor := strings.IndexByte(litmus, '|')
	if cursor < 0 {
		t.Fatalf("litmus %q has no cursor", litmus)
	}
	line := []byte(litmus[:cursor] + litmus[cursor+1:])

	s, err := NewlineSplit(line, cursor, marker)
	if err != nil {
		t.Fatalf("NewlineSplit(%q): %v", litmus, err)
	}

	rows := [][]byte{s.First, s.Second}
	row := rows[s.Row]
	rows[s.Row] = append(append(append([]byte{}, row[:s.Col]...), '|'), row[s.Col:]...)
	return s, string(rows[0]) + "\n" + string(rows[1])
}

func TestNewlineSplit_Litmus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "~~~|~int x = 0", want: "~~~\n~~|~int x = 0"},
		{in: "~|~~~int x = 0", want: "~\n|~~~int x = 0"},
		{in: "~~int x|= 0", want: "~~int x\n~~|= 0"},
		{in: "~~int x = 0|", want: "~~int x = 0\n~~|"},
		{in: "|~~int x = 0", want: "\n|~~int x = 0"},
		{in: "~~int~|x~=~0", want: "~~int~\n~~|x~=~0"},
		{in: "int~|~x~=~0", want: "int~\n|~x~=~0"},
		{in: "int x|= 0", want: "int x\n|= 0"},
		{in: "~~~~|int x = 0", want: "~~~~\n~~~~|int x = 0"},
	}

	for _, tc := range cases {
		_, got := splitLitmus(t, tc.in, '~')
		if got != tc.want {
			t.Fatalf("split %q:\n got: %q\nwant: %q", tc.in, got, tc.want)
		}
	}
}

func TestNewlineSplit_NoLeadingRun(t *testing.T) {
	line := []byte("int x= 0")
	s, err := NewlineSplit(line, 5, ' ')
	if err != nil {
		t.Fatalf("NewlineSplit: %v", err)
	}
	if s.Row != 1 || s.Col != 0 {
		t.Fatalf("cursor: got (%d, %d), want (1, 0)", s.Row, s.Col)
	}
	if got, want := string(s.First)+"\n"+string(s.Second), "int x\n= 0"; got != want {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestNewlineSplit_LeadingRun(t *testing.T) {
	line := []rune("~~~~int x = 0")
	s, err := NewlineSplit(line, 4, '~')
	if err != nil {
		t.Fatalf("NewlineSplit: %v", err)
	}
	if s.Col != 4 {
		t.Fatalf("col: got %d, want 4", s.Col)
	}
	if got, want := string(s.First)+"\n"+string(s.Second), "~~~~\n~~~~int x = 0"; got != want {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestNewlineSplit_CursorInsideRun(t *testing.T) {
	s, got := splitLitmus(t, "~|~~~int x = 0", '~')
	if s.Col != 0 {
		t.Fatalf("col: got %d, want 0", s.Col)
	}
	if want := "~\n|~~~int x = 0"; got != want {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestNewlineSplit_AllMarkers(t *testing.T) {
	s, got := splitLitmus(t, "~~|~~", '~')
	if s.Col != 0 {
		t.Fatalf("col: got %d, want 0", s.Col)
	}
	if want := "~~\n|~~"; got != want {
		t.Fatalf("rows: got %q, want %q", got, want)
	}

	_, got = splitLitmus(t, "~~~|", '~')
	if want := "~~~\n~~~|"; got != want {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
}

func TestNewlineSplit_EmptyLine(t *testing.T) {
	s, err := NewlineSplit([]byte{}, 0, ' ')
	if err != nil {
		t.Fatalf("NewlineSplit: %v", err)
	}
	if len(s.First) != 0 || len(s.Second) != 0 || s.Col != 0 {
		t.Fatalf("empty split: got %+v", s)
	}
}

func TestNewlineSplit_DoesNotAliasInput(t *testing.T) {
	line := []byte("~~ab")
	s, err := NewlineSplit(line, 3, '~')
	if err != nil {
		t.Fatalf("NewlineSplit: %v", err)
	}
	s.First[0] = 'X'
	s.Second[0] = 'Y'
	if string(line) != "~~ab" {
		t.Fatalf("input mutated: %q", line)
	}
}

func TestNewlineSplit_CursorOutOfRange(t *testing.T) {
	if _, err := NewlineSplit([]byte("abc"), 4, ' '); !errors.Is(err, ErrCursorOutOfRange) {
		t.Fatalf("got err %v, want ErrCursorOutOfRange", err)
	}
}
