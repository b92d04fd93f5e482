package ats

import (
	"regexp"
	"strconv"
	"strings"
)

// Input is the structured data half of the score. Slices may come from the
// heuristic extractor, the oracle analysis, or a merge of both.
type Input struct {
	Email      string
	Phone      string
	Skills     []string
	Experience []string
	Education  []string
}

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)`)

// bulletMarkers includes the Windows-1252-as-UTF-8 mangled bullet that shows
// up in exported resumes; treating it as a bullet keeps the formatting signal
// robust against that corruption.
var bulletMarkers = []string{"-", "*", "â€¢"}

// Score computes the ATS readiness heuristic: a pure, deterministic function
// of (text, input) in [0,100]. Each component is capped, the sum clamped.
// This is a locally computed proxy, not a vendor ATS score.
func Score(text string, input Input) int {
	score := 0

	// contact info (0-15)
	if input.Email != "" {
		score += 8
	}
	if input.Phone != "" {
		score += 7
	}

	// skills coverage (0-25)
	score += min(25, countDistinct(input.Skills))

	// experience signal (0-20)
	if groups := yearsPattern.FindStringSubmatch(strings.ToLower(text)); groups != nil {
		years, err := strconv.Atoi(groups[1])
		if err == nil {
			score += min(20, 5+years)
		}
	} else if len(input.Experience) > 0 {
		score += 10
	}

	// education present (0-10)
	if len(input.Education) > 0 {
		score += 10
	}

	// formatting and readability (0-20)
	score += bulletPoints(text)

	// length threshold (0-10)
	switch {
	case len(text) >= 1500:
		score += 10
	case len(text) >= 800:
		score += 6
	case len(text) >= 300:
		score += 3
	}

	return max(0, min(100, score))
}

func bulletPoints(text string) int {
	bullets := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, marker := range bulletMarkers {
			if strings.HasPrefix(line, marker) {
				bullets++
				break
			}
		}
	}

	switch {
	case bullets >= 10:
		return 20
	case bullets >= 5:
		return 15
	case bullets >= 1:
		return 8
	}
	return 0
}

func countDistinct(skills []string) int {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		seen[s] = struct{}{}
	}
	return len(seen)
}
