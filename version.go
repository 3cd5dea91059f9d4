// Package cursorfit carries the module version shared by the cursorfit
// commands. The layout algebra lives in the box, bounded and layout
// packages.
package cursorfit

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

var ErrNotSemver = errors.New("not a semver version")

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// Banner is the one-line version string printed by the commands.
func Banner(program string) string {
	return fmt.Sprintf("%s %s (github.com/iw2rmb/cursorfit)", program, VersionTag())
}

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major int
	Minor int
	Patch int

	Prerelease string
	Build      string
}

// ParseSemver parses v, which must not carry a leading `v`.
func ParseSemver(v string) (Semver, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, fmt.Errorf("%w: %q", ErrNotSemver, v)
	}

	var s Semver
	for i, dst := range []*int{&s.Major, &s.Minor, &s.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Semver{}, fmt.Errorf("%w: %q: %v", ErrNotSemver, v, err)
		}
		*dst = n
	}
	s.Prerelease = m[4]
	s.Build = m[5]
	return s, nil
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseSemver(v)
	return err == nil
}
