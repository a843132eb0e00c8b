package richtext

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed release number.
type SemVer struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseVersion parses a SemVer 2.0.0 string without the leading `v`.
func ParseVersion(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return SemVer{}, fmt.Errorf("richtext: %q is not a semantic version", s)
	}
	var v SemVer
	for i, dst := range []*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, fmt.Errorf("richtext: version %q: %w", s, err)
		}
		*dst = n
	}
	v.Pre, v.Build = m[4], m[5]
	return v, nil
}

// Version is the release embedded from the VERSION file, as printed by
// `richnote version`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}
