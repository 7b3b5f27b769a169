package winver

import (
	"errors"
	"strings"
	"testing"
)

func TestNewReportsWin98ByDefault(t *testing.T) {
	e := New()
	v := e.Windows()
	if v.Name != "win98" || v.Major != 4 || v.Minor != 10 {
		t.Fatalf("unexpected default version: %#v", v)
	}
	if e.Overridden() {
		t.Fatalf("expected default not marked as overridden")
	}
}

func TestSetWindowsAcceptsEveryKnownName(t *testing.T) {
	for _, name := range Known() {
		e := New()
		if err := e.SetWindows(name); err != nil {
			t.Fatalf("SetWindows(%q) returned error: %v", name, err)
		}
		if e.Windows().Name != name {
			t.Fatalf("expected %q, got %q", name, e.Windows().Name)
		}
		if !e.Overridden() {
			t.Fatalf("expected override recorded for %q", name)
		}
	}
}

func TestSetWindowsTableValues(t *testing.T) {
	e := New()
	if err := e.SetWindows("nt40"); err != nil {
		t.Fatalf("SetWindows returned error: %v", err)
	}
	v := e.Windows()
	if v.Major != 4 || v.Minor != 0 || v.Build != 1381 || v.Platform != NT {
		t.Fatalf("unexpected nt40 data: %#v", v)
	}
}

func TestSetWindowsRejectsUnknownName(t *testing.T) {
	e := New()
	err := e.SetWindows("win12")
	var unknown *UnknownVersionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownVersionError, got %v", err)
	}
	if unknown.Name != "win12" {
		t.Fatalf("expected offending name recorded, got %q", unknown.Name)
	}
	if !strings.Contains(err.Error(), "win31") {
		t.Fatalf("expected valid names listed, got %q", err.Error())
	}
	if e.Windows().Name != "win98" {
		t.Fatalf("expected version unchanged after error")
	}
}

func TestSetDOSParsesMajorMinor(t *testing.T) {
	e := New()
	if err := e.SetDOS("6.22"); err != nil {
		t.Fatalf("SetDOS returned error: %v", err)
	}
	major, minor, ok := e.DOS()
	if !ok || major != 6 || minor != 22 {
		t.Fatalf("unexpected DOS version: %d.%d ok=%v", major, minor, ok)
	}
}

func TestSetDOSRejectsMalformedValues(t *testing.T) {
	for _, ver := range []string{"", "622", "6.", ".22", "a.b", "6.2x", "-1.0"} {
		e := New()
		err := e.SetDOS(ver)
		var invalid *InvalidDOSVersionError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidDOSVersionError for %q, got %v", ver, err)
		}
		if _, _, ok := e.DOS(); ok {
			t.Fatalf("expected no DOS version recorded for %q", ver)
		}
	}
}
