package parse

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567

Experience
Software engineer at Acme Corp
Built services with Go and Python

Education
Bachelor of Science in Computer Science

Skills
Go, Python, Docker, Kubernetes, SQL`

func TestParse_SampleResume(t *testing.T) {
	p := NewParser(nil)
	record := p.Parse(sampleResume)

	if record.Name != "Jane Doe" {
		t.Errorf("Name got %q, want %q", record.Name, "Jane Doe")
	}
	if record.Email != "jane.doe@example.com" {
		t.Errorf("Email got %q", record.Email)
	}
	if record.Phone != "5551234567" {
		t.Errorf("Phone got %q, want digit run %q", record.Phone, "5551234567")
	}
	if record.Confidence != 0.8 {
		t.Errorf("Confidence got %v, want 0.8", record.Confidence)
	}

	for _, want := range []string{"python", "docker", "kubernetes", "sql"} {
		found := false
		for _, s := range record.Skills {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Skills missing %q, got %v", want, record.Skills)
		}
	}
}

func TestExtractName_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Two token name on first line", "John Smith\nEngineer", "John Smith"},
		{"Skips contact labels", "Email: John Smith\nMary Jones\n", "Mary Jones"},
		{"Three token name not matched", "John Q Smith\n", ""},
		{"Name beyond five lines ignored", "a\nb\nc\nd\ne\nJohn Smith\n", ""},
		{"Digits disqualify the line", "John Smith2\n", ""},
		{"Empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractName(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPhone_Formats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"Parenthesized NA", "call (555) 123-4567 now", "5551234567"},
		{"Dotted NA", "555.123.4567", "5551234567"},
		{"Country code NA", "+1 555 123 4567", "5551234567"},
		{"No phone", "no digits here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPhone(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractExperience_StateMachine(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Experience",
		"Engineer at Acme",
		"Shipped things",
		"Education",
		"BS Computer Science",
	}, "\n")

	segments := extractExperience(text)

	if len(segments) != 1 {
		t.Fatalf("expected one segment, got %d: %v", len(segments), segments)
	}
	want := "Engineer at Acme Shipped things"
	if segments[0] != want {
		t.Errorf("segment got %q, want %q", segments[0], want)
	}
}

func TestExtractExperience_FlushAtEOF(t *testing.T) {
	segments := extractExperience("Work Experience\nStill going\n")
	if len(segments) != 1 || segments[0] != "Still going" {
		t.Errorf("expected trailing section flushed, got %v", segments)
	}
}

func TestExtractExperience_NoSection(t *testing.T) {
	if segments := extractExperience("Just a plain paragraph."); len(segments) != 0 {
		t.Errorf("expected no segments, got %v", segments)
	}
}

func TestExtractSkills_DedupePreservesOrder(t *testing.T) {
	p := NewParser(nil)
	// python appears many times, must be listed once
	skills := p.extractSkills("python python docker python")

	count := 0
	for _, s := range skills {
		if s == "python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one python entry, got %d in %v", count, skills)
	}
}

func TestExtractSkills_TaggerAugmentsVocabulary(t *testing.T) {
	tagger := stubTagger{entities: []Entity{
		{Text: "SuperQuery database", Label: "PRODUCT"},
		{Text: "OR", Label: "ORG"},           // too short
		{Text: "Acme Corp", Label: "ORG"},    // no tech hint
		{Text: "some framework", Label: "GPE"}, // wrong label
	}}
	p := NewParser(tagger)

	skills := p.extractSkills("text with python")

	found := false
	for _, s := range skills {
		if s == "SuperQuery database" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected tagged skill present, got %v", skills)
	}
	if len(skills) != 2 {
		t.Errorf("expected vocab hit plus one tagged skill, got %v", skills)
	}
}

func TestExtractEducation_Degrees(t *testing.T) {
	found := extractEducation("Completed a Master of Science and a PhD program")
	if len(found) == 0 {
		t.Fatal("expected degree mentions")
	}
}

func TestParse_EmptyText(t *testing.T) {
	record := NewParser(nil).Parse("")
	if record.Name != "" || record.Email != "" || record.Phone != "" {
		t.Errorf("expected zero-valued contact fields, got %+v", record)
	}
	if len(record.Skills) != 0 || len(record.Experience) != 0 {
		t.Errorf("expected empty lists, got %+v", record)
	}
}

type stubTagger struct {
	entities []Entity
}

func (s stubTagger) Entities(text string) ([]Entity, error) {
	return s.entities, nil
}
