package version

import (
	"strings"
	"testing"
)

func TestStringFallsBackToRelease(t *testing.T) {
	// Test binaries carry a (devel) module version.
	if got := String(); got != Release {
		t.Fatalf("expected %q, got %q", Release, got)
	}
}

func TestBannerNamesTheProject(t *testing.T) {
	banner := Banner()
	if !strings.HasPrefix(banner, "proton-wine ") {
		t.Fatalf("unexpected banner: %q", banner)
	}
	if !strings.HasSuffix(banner, String()) {
		t.Fatalf("expected banner to end with the version, got %q", banner)
	}
}

func TestIsPseudoVersion(t *testing.T) {
	if !isPseudoVersion("v0.0.0-20240115103000-abcdef123456") {
		t.Fatalf("expected pseudo-version to be detected")
	}
	if isPseudoVersion("v9.0.1") {
		t.Fatalf("expected tagged version not to be pseudo")
	}
	if isPseudoVersion("v9.0.1-rc.1") {
		t.Fatalf("expected prerelease not to be pseudo")
	}
}
