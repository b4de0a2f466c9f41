package catalog

import "testing"

func TestNormalizeSynonymGroups(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"cell phone", "phone"},
		{"Mobile Phone", "phone"},
		{"water bottle", "bottle"},
		{"coffee cup", "bottle"},
		{"wine glass", "bottle"},
		{"TV", "tv"},
		{"computer monitor", "tv"},
		{"laptop", "tv"},
		{"microwave", "ac"},
		{"remote control", "ac"},
		{"refrigerator", "ac"},
		{"microphone", "mic"},
		{"audio device", "mic"},
		{"speaker", "mic"},
		{"ceiling fan", "fan"},
		{"light bulb", "light"},
		{"desk lamp", "light"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.label); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestNormalizeUnmatchedFallsBackToOther(t *testing.T) {
	for _, label := range []string{"dog", "chair", ""} {
		if got := Normalize(label); got != "other" {
			t.Errorf("Normalize(%q) = %q, want other", label, got)
		}
	}
}

func TestNormalizeFirstGroupWins(t *testing.T) {
	// "phone screen" hits both phone and tv keywords, phone is declared first.
	if got := Normalize("phone screen"); got != "phone" {
		t.Errorf("Normalize(phone screen) = %q, want phone", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{1, 100},
		{0.85, 85},
		{0.333, 33},
		{0.667, 67},
	}

	for _, tt := range tests {
		if got := Percent(tt.score); got != tt.want {
			t.Errorf("Percent(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
