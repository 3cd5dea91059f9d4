package cursorfit

import (
	"errors"
	"strings"
	"testing"
)

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestBanner(t *testing.T) {
	got := Banner("cursorfit")
	if !strings.HasPrefix(got, "cursorfit v"+Version()+" ") {
		t.Fatalf("banner: got %q", got)
	}
}

func TestParseSemver(t *testing.T) {
	got, err := ParseSemver("1.12.3-alpha.1+build.7")
	if err != nil {
		t.Fatalf("ParseSemver: %v", err)
	}
	want := Semver{Major: 1, Minor: 12, Patch: 3, Prerelease: "alpha.1", Build: "build.7"}
	if got != want {
		t.Fatalf("ParseSemver: got %+v, want %+v", got, want)
	}

	if _, err := ParseSemver("v1.2.3"); !errors.Is(err, ErrNotSemver) {
		t.Fatalf("leading v: got err %v, want ErrNotSemver", err)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
