package resumeModel

// ResumeRecord is the output of the heuristic field extractor. Fields the
// heuristics could not find stay at their zero value, never fabricated.
type ResumeRecord struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Confidence float64  `json:"confidence_score"`
}

// Analysis is the normalized oracle output for a single resume. Key set and
// defaults mirror the JSON shape the oracle is prompted for; missing keys are
// filled with empty values, name/title stay null when absent.
type Analysis struct {
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	ExperienceList []string `json:"experience_list"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Name           *string  `json:"name"`
	Title          *string  `json:"title"`
	Summary        string   `json:"summary"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`

	// Degraded marks an analysis synthesized because the oracle response
	// could not be parsed. Never serialized, never cached.
	Degraded bool `json:"-"`
}

// ParsedResume is the full /parse-resume result before API conversion.
type ParsedResume struct {
	Analysis   Analysis
	Record     ResumeRecord
	ParsedText string
	Confidence float64
	AtsScore   int
}

type JobPosting struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
}

// JobMatch is an embedding-ranked match. Similarity is cosine based, on the
// 0-1 scale; Percentage is its integer projection. Distinct from the oracle's
// 0-100 MatchScore, the two are never converted into each other implicitly.
type JobMatch struct {
	JobID         int
	Title         string
	Company       string
	Similarity    float64
	Percentage    int
	MatchedSkills []string
}

// OracleMatch is the oracle-native match shape, score on the 0-100 scale.
type OracleMatch struct {
	JobID          int      `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	Company        string   `json:"company"`
	MatchScore     float64  `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Explanation    string   `json:"explanation"`
}
