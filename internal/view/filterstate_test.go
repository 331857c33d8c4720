package view

import "testing"

func TestFilterStateBlankQueries(t *testing.T) {
	var s FilterState

	if err := s.SetFilter(""); err != nil {
		t.Fatalf("SetFilter(\"\") error: %v", err)
	}
	if s.Filter() != nil {
		t.Errorf("blank filter should clear the expression")
	}
	if err := s.SetHide("   "); err != nil {
		t.Fatalf("SetHide blank error: %v", err)
	}
	if !s.Matches("anything") {
		t.Errorf("unfiltered state should match every line")
	}
}

func TestFilterStateKeepsPriorOnError(t *testing.T) {
	var s FilterState

	if err := s.SetFilter("error"); err != nil {
		t.Fatalf("SetFilter error: %v", err)
	}
	prior := s.Filter()

	if err := s.SetFilter(`"unterminated`); err == nil {
		t.Fatalf("expected parse error")
	}
	if s.Filter() != prior {
		t.Errorf("failed parse must leave the prior expression in effect")
	}
	if s.FilterError() == "" {
		t.Errorf("failed parse must record an error message")
	}
	if !s.Matches("error: disk full") || s.Matches("all good") {
		t.Errorf("prior filter no longer in effect after failed parse")
	}

	if err := s.SetFilter("warn"); err != nil {
		t.Fatalf("SetFilter error: %v", err)
	}
	if s.FilterError() != "" {
		t.Errorf("successful parse must clear the recorded error")
	}
}

func TestFilterStateHideGate(t *testing.T) {
	var s FilterState

	if err := s.SetFilter("error"); err != nil {
		t.Fatalf("SetFilter error: %v", err)
	}
	if err := s.SetHide(`debug`); err != nil {
		t.Fatalf("SetHide error: %v", err)
	}

	tests := []struct {
		line string
		want bool
	}{
		{"error: disk full", true},
		{"debug error trace", false}, // hidden even though the filter matches
		{"all quiet", false},
	}
	for _, tt := range tests {
		if got := s.Matches(tt.line); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFilterStateHideBadRegexp(t *testing.T) {
	var s FilterState

	if err := s.SetHide("good"); err != nil {
		t.Fatalf("SetHide error: %v", err)
	}
	if err := s.SetHide("("); err == nil {
		t.Fatalf("expected regexp compile error")
	}
	if s.HideError() == "" {
		t.Errorf("failed compile must record an error message")
	}
	if s.Matches("still good") {
		t.Errorf("prior hide pattern no longer in effect after failed compile")
	}
}
