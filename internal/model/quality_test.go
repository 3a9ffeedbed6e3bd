package model

import "testing"

func TestQualityHeight(t *testing.T) {
	tests := []struct {
		quality Quality
		height  int
		fixed   bool
	}{
		{Quality360p, 360, true},
		{Quality480p, 480, true},
		{Quality720p, 720, true},
		{Quality1080p, 1080, true},
		{QualityBest, 0, false},
	}

	for _, tt := range tests {
		height, fixed := tt.quality.Height()
		if fixed != tt.fixed {
			t.Errorf("Quality(%q).Height() fixed = %v, want %v", tt.quality, fixed, tt.fixed)
		}
		if height != tt.height {
			t.Errorf("Quality(%q).Height() = %d, want %d", tt.quality, height, tt.height)
		}
	}
}

func TestQualityHeightMalformedFailsClosed(t *testing.T) {
	// Labels that should never come from the UI still must not blow up;
	// they degrade to the best-available behavior.
	for _, label := range []string{"", "p", "abcp", "-100p", "0p", "720", "720P"} {
		if _, fixed := Quality(label).Height(); fixed {
			t.Errorf("Quality(%q).Height() reported a fixed height, want fail-closed", label)
		}
	}
}

func TestQualityOptions(t *testing.T) {
	options := QualityOptions()

	if len(options) != 5 {
		t.Fatalf("Expected 5 quality options, got %d", len(options))
	}

	if options[len(options)-1] != QualityBest {
		t.Errorf("Expected last option to be %q, got %q", QualityBest, options[len(options)-1])
	}
}
