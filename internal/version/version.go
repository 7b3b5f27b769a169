// Package version reports the launcher release identity shown by
// --version and at the top of the usage dump.
package version

import (
	"runtime/debug"
	"strings"
)

// Release identifies the launcher when no usable module version is
// embedded, as in development and dirty builds.
const Release = "9.0"

// String returns the release version, preferring the module version
// recorded at build time.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Release
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		return Release
	}
	if strings.Contains(version, "+dirty") || isPseudoVersion(version) {
		return Release
	}
	return strings.TrimPrefix(version, "v")
}

// Banner is the one-line identification printed by --version.
func Banner() string {
	return "proton-wine " + String()
}

// isPseudoVersion detects module versions of the vX.Y.Z-timestamp-hash
// shape, which identify an untagged commit rather than a release.
func isPseudoVersion(version string) bool {
	version, _, _ = strings.Cut(version, "+")

	parts := strings.Split(version, "-")
	if len(parts) < 3 {
		return false
	}

	ts := parts[len(parts)-2]
	hash := parts[len(parts)-1]
	if len(ts) != 14 || !allDigits(ts) {
		return false
	}
	if len(hash) < 12 || !allHex(hash) {
		return false
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= '0' && b <= '9' {
			continue
		}
		if b >= 'a' && b <= 'f' {
			continue
		}
		if b >= 'A' && b <= 'F' {
			continue
		}
		return false
	}
	return true
}
