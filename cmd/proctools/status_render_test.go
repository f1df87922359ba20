package main

import (
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Depot", statusError, "No products found", false)
	if got != "Depot: [ERROR] No products found" {
		t.Fatalf("unexpected status line %q", got)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Depot", statusOK, "Ready", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}

	// Info lines carry no color even when colorizing.
	if got := renderStatusLine("Depot", statusInfo, "Detail", true); strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no color for info, got %q", got)
	}
}

func TestStatusKindLabels(t *testing.T) {
	cases := []struct {
		kind statusKind
		want string
	}{
		{statusInfo, "INFO"},
		{statusOK, "OK"},
		{statusWarn, "WARN"},
		{statusError, "ERROR"},
	}
	for _, tc := range cases {
		if got := statusKindLabel(tc.kind); got != tc.want {
			t.Fatalf("label for %d: got %q want %q", tc.kind, got, tc.want)
		}
	}
}

func TestTypeHeading(t *testing.T) {
	cases := map[string]string{
		"observation":  "Observation",
		"rad-flat-prm": "Rad Flat Prm",
		"rad-dark-prm": "Rad Dark Prm",
	}
	for in, want := range cases {
		if got := typeHeading(in); got != want {
			t.Fatalf("typeHeading(%q): got %q want %q", in, got, want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Product", "Count"},
		[][]string{{"Observation", "3"}, {"Rad Flat Prm"}},
		2,
	)
	for _, want := range []string{"Product", "Observation", "3", "Rad Flat Prm"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty render without headers")
	}
}
