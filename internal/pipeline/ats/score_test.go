package ats

import (
	"strings"
	"testing"
)

func TestScore_Deterministic(t *testing.T) {
	text := "Jane Doe\n- shipped a thing\n5 years of experience"
	input := Input{
		Email:  "jane@example.com",
		Phone:  "5551234567",
		Skills: []string{"python", "sql"},
	}

	first := Score(text, input)
	for i := 0; i < 5; i++ {
		if got := Score(text, input); got != first {
			t.Fatalf("score not deterministic: %d vs %d", got, first)
		}
	}
}

func TestScore_ContactSignals(t *testing.T) {
	base := Score("short", Input{})
	withEmail := Score("short", Input{Email: "a@b.co"})
	withBoth := Score("short", Input{Email: "a@b.co", Phone: "5551234567"})

	if withEmail-base != 8 {
		t.Errorf("email signal got %d, want 8", withEmail-base)
	}
	if withBoth-withEmail != 7 {
		t.Errorf("phone signal got %d, want 7", withBoth-withEmail)
	}
}

func TestScore_SkillsCapped(t *testing.T) {
	skills := make([]string, 40)
	for i := range skills {
		skills[i] = strings.Repeat("x", i+1)
	}

	base := Score("short", Input{})
	capped := Score("short", Input{Skills: skills})
	if capped-base != 25 {
		t.Errorf("skills component got %d, want cap 25", capped-base)
	}
}

func TestScore_DuplicateSkillsCountOnce(t *testing.T) {
	one := Score("short", Input{Skills: []string{"python"}})
	dup := Score("short", Input{Skills: []string{"python", "python", "python"}})
	if one != dup {
		t.Errorf("duplicates changed score: %d vs %d", one, dup)
	}
}

func TestScore_ExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"Three years", "3 years at a startup", 8},
		{"Plus suffix", "10+ years leading teams", 15},
		{"Cap at twenty", "30 years of work", 20},
		{"Yrs alias", "7 yrs in ops", 12},
	}

	base := Score("", Input{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// keep the text under the length thresholds, no bullets
			got := Score(tt.text, Input{}) - base
			if got != tt.want {
				t.Errorf("years component got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_ExperienceFallbackWithoutYears(t *testing.T) {
	base := Score("no numbers here", Input{})
	withExp := Score("no numbers here", Input{Experience: []string{"Engineer at Acme"}})
	if withExp-base != 10 {
		t.Errorf("experience fallback got %d, want 10", withExp-base)
	}
}

func TestScore_BulletTiers(t *testing.T) {
	tests := []struct {
		name    string
		bullets int
		want    int
	}{
		{"None", 0, 0},
		{"One", 1, 8},
		{"Five", 5, 15},
		{"Ten", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]string, tt.bullets)
			for i := range lines {
				lines[i] = "- item"
			}
			if got := bulletPoints(strings.Join(lines, "\n")); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_MangledBulletMarker(t *testing.T) {
	if got := bulletPoints("â€¢ shipped feature"); got != 8 {
		t.Errorf("mangled bullet not counted, got %d", got)
	}
}

func TestScore_LengthTiers(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Tiny", 100, 0},
		{"Short", 400, 3},
		{"Medium", 900, 6},
		{"Long", 2000, 10},
	}

	base := Score("", Input{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("a", tt.size)
			if got := Score(text, Input{}) - base; got != tt.want {
				t.Errorf("length component got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	if got := Score("", Input{}); got != 0 {
		t.Errorf("empty resume got %d, want 0", got)
	}

	rich := strings.Repeat("- did a thing with impact\n", 80) + "15 years of experience"
	input := Input{
		Email:      "a@b.co",
		Phone:      "5551234567",
		Skills:     []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z"},
		Experience: []string{"x"},
		Education:  []string{"bs"},
	}
	got := Score(rich, input)
	if got < 0 || got > 100 {
		t.Fatalf("score out of bounds: %d", got)
	}
	if got != 100 {
		t.Errorf("fully signaled resume got %d, want 100", got)
	}
}
