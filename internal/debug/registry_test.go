package debug

import "testing"

func mustParse(t *testing.T, expr string) []Edit {
	t.Helper()
	edits, err := ParseFilter(expr)
	if err != nil {
		t.Fatalf("ParseFilter(%q) returned error: %v", expr, err)
	}
	return edits
}

func TestRegistryDefaultsShowErrorsAndFixmes(t *testing.T) {
	var r Registry
	if !r.Enabled(Err, "heap") || !r.Enabled(Fixme, "heap") {
		t.Fatalf("expected err and fixme on by default")
	}
	if r.Enabled(Warn, "heap") || r.Enabled(Trace, "heap") {
		t.Fatalf("expected warn and trace off by default")
	}
}

func TestRegistryFoldsEditsInOrder(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "+all,warn-heap"))
	if !r.Enabled(Trace, "heap") {
		t.Fatalf("expected trace on for heap after +all")
	}
	if r.Enabled(Warn, "heap") {
		t.Fatalf("expected warn off for heap after warn-heap")
	}
	if !r.Enabled(Warn, "gdi") {
		t.Fatalf("expected warn still on for other channels")
	}
}

func TestRegistryBlanketEditOverridesEarlierChannelEdit(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "warn+heap,warn-all"))
	if r.Enabled(Warn, "heap") {
		t.Fatalf("expected later blanket clear to win for heap")
	}
}

func TestRegistryAccumulatesAcrossApplyCalls(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "+all"))
	r.Apply(mustParse(t, "trace-heap"))
	if r.Enabled(Trace, "heap") {
		t.Fatalf("expected trace off for heap")
	}
	if !r.Enabled(Trace, "gdi") {
		t.Fatalf("expected trace on elsewhere")
	}
}

func TestRegistryRelayIncludeListAdmitsOnlyMembers(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "+relay=kernel32:user32"))
	if !r.FacilityEnabled(Relay, "kernel32") || !r.FacilityEnabled(Relay, "USER32") {
		t.Fatalf("expected listed modules enabled regardless of case")
	}
	if r.FacilityEnabled(Relay, "gdi32") {
		t.Fatalf("expected unlisted module disabled")
	}
	if !r.FacilityEnabled(Snoop, "gdi32") {
		t.Fatalf("expected snoop unaffected by relay list")
	}
}

func TestRegistryExcludeListRejectsOnlyMembers(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "-snoop=ole32"))
	if r.FacilityEnabled(Snoop, "ole32") {
		t.Fatalf("expected excluded module disabled")
	}
	if !r.FacilityEnabled(Snoop, "comdlg32") {
		t.Fatalf("expected other modules enabled")
	}
}

func TestRegistryModuleListReplacedOnReapply(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "+relay=kernel32"))
	r.Apply(mustParse(t, "+relay=user32"))
	if r.FacilityEnabled(Relay, "kernel32") {
		t.Fatalf("expected earlier list replaced, kernel32 no longer admitted")
	}
	if !r.FacilityEnabled(Relay, "user32") {
		t.Fatalf("expected user32 admitted by the new list")
	}
}

func TestRegistryIncludeListTakesPrecedenceOverExclude(t *testing.T) {
	var r Registry
	r.Apply(mustParse(t, "+relay=kernel32,-relay=kernel32"))
	if !r.FacilityEnabled(Relay, "kernel32") {
		t.Fatalf("expected include list to take precedence")
	}
	if r.FacilityEnabled(Relay, "user32") {
		t.Fatalf("expected non-member rejected by include list")
	}
}

func TestRegistryFacilityDefaultTracesEverything(t *testing.T) {
	var r Registry
	if !r.FacilityEnabled(Relay, "anything") || !r.FacilityEnabled(Snoop, "anything") {
		t.Fatalf("expected facilities unrestricted by default")
	}
}

func TestClassNamesMatchDeclarationOrder(t *testing.T) {
	want := []string{"fixme", "err", "warn", "trace"}
	got := ClassNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d classes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected class %d to be %q, got %q", i, want[i], got[i])
		}
	}
	if Warn.String() != "warn" {
		t.Fatalf("expected warn, got %q", Warn.String())
	}
}
