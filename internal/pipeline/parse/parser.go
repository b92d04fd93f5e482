package parse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
)

// heuristicConfidence is a static placeholder, not a computed confidence.
const heuristicConfidence = 0.8

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// North-American shape first, then a generic international fallback.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
		regexp.MustCompile(`\+?([0-9]{1,3})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})`),
	}

	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`bachelor['s]*\s+(?:of\s+)?(?:science|arts|engineering)`),
		regexp.MustCompile(`master['s]*\s+(?:of\s+)?(?:science|arts|business|engineering)`),
		regexp.MustCompile(`phd|ph\.d\.|doctorate`),
		regexp.MustCompile(`associate['s]*\s+degree`),
		regexp.MustCompile(`b\.?s\.?|b\.?a\.?|m\.?s\.?|m\.?a\.?|m\.?b\.?a\.?`),
	}

	experienceHeaders = []string{"experience", "work experience", "employment", "career"}
	sectionEnders     = []string{"education", "skills", "projects"}
	nameBlocklist     = []string{"email", "phone", "address"}
)

// Parser turns normalized resume text into a ResumeRecord. The tagger is an
// optional NER augmentation for the skill list; nil disables it.
type Parser struct {
	tagger Tagger
}

func NewParser(tagger Tagger) *Parser {
	return &Parser{tagger: tagger}
}

// Parse never fails: every sub-extraction returns its zero value on any
// internal problem and the record simply has fewer fields.
func (p *Parser) Parse(text string) resumeModel.ResumeRecord {
	return resumeModel.ResumeRecord{
		Name:       extractName(text),
		Email:      extractEmail(text),
		Phone:      extractPhone(text),
		Skills:     p.extractSkills(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
		Confidence: heuristicConfidence,
	}
}

// extractName scans the first five lines for exactly two all-alphabetic
// tokens. Best effort only: a resume that opens with a title like
// "Senior Engineer" will produce a false positive, one that opens with a
// three-part name a false negative.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(strings.Fields(line)) != 2 {
			continue
		}
		if !isAlphabetic(strings.ReplaceAll(line, " ", "")) {
			continue
		}
		if containsAny(strings.ToLower(line), nameBlocklist) {
			continue
		}
		return line
	}
	return ""
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone joins the captured digit groups, losing the separators. The
// result is a digit run, not a canonicalized phone number.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if groups := pattern.FindStringSubmatch(text); groups != nil {
			return strings.Join(groups[1:], "")
		}
	}
	return ""
}

func (p *Parser) extractSkills(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for _, skill := range SkillVocabulary {
		if strings.Contains(textLower, skill) {
			found = append(found, skill)
		}
	}

	if p.tagger != nil {
		found = append(found, p.taggedSkills(text)...)
	}

	return dedupe(found)
}

// taggedSkills adds product/organization entities whose surface text hints at
// a technology. The tagger is best effort and any failure is swallowed.
func (p *Parser) taggedSkills(text string) []string {
	entities, err := p.tagger.Entities(text)
	if err != nil {
		return nil
	}

	var skills []string
	for _, ent := range entities {
		if ent.Label != "PRODUCT" && ent.Label != "ORG" {
			continue
		}
		if len(ent.Text) <= 2 {
			continue
		}
		if containsAny(strings.ToLower(ent.Text), []string{"framework", "language", "database", "tool"}) {
			skills = append(skills, ent.Text)
		}
	}
	return skills
}

// extractExperience is a line-oriented state machine. A header line flips the
// machine inside the experience section and is consumed; an education/skills/
// projects line flips it back out and flushes the accumulated segment. Lines
// inside the section are space-joined into one segment per section.
func extractExperience(text string) []string {
	var segments []string
	var current strings.Builder
	inside := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		if containsAny(lower, experienceHeaders) {
			inside = true
			continue
		}

		if inside && containsAny(lower, sectionEnders) {
			if current.Len() > 0 {
				segments = append(segments, strings.TrimSpace(current.String()))
				current.Reset()
			}
			inside = false
		}

		if inside && line != "" {
			current.WriteString(line)
			current.WriteString(" ")
		}
	}

	if current.Len() > 0 {
		segments = append(segments, strings.TrimSpace(current.String()))
	}

	return segments
}

func extractEducation(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for _, pattern := range degreePatterns {
		found = append(found, pattern.FindAllString(textLower, -1)...)
	}
	return dedupe(found)
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
