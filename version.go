package fixstr

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version in SemVer form, without a
// leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
