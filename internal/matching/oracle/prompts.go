package oracle

import (
	"fmt"
	"strings"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/domain/resumeModel"
)

func buildAnalyzePrompt(resumeText string) string {
	var b strings.Builder

	b.WriteString("Analyze the following resume and extract structured information in JSON format.\n\n")
	b.WriteString("Resume text:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nPlease extract and return a JSON object with the following structure:\n")
	b.WriteString(`{
    "skills": ["skill1", "skill2", "skill3"],
    "experience": "X years of experience in...",
    "email": "extracted_email@example.com",
    "phone": "extracted_phone_number",
    "name": "Full Name if present",
    "title": "Primary professional title or role",
    "summary": "Professional summary...",
    "education": ["Degree 1", "Degree 2"],
    "certifications": ["Cert 1", "Cert 2"]
}`)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("- Extract technical skills, programming languages, frameworks, and tools\n")
	b.WriteString("- Summarize work experience with years of experience\n")
	b.WriteString("- Extract contact information (email, phone)\n")
	b.WriteString("- Extract full name from header or contact section when possible\n")
	b.WriteString("- Extract most relevant title (e.g., 'Full Stack Developer')\n")
	b.WriteString("- Create a concise professional summary\n")
	b.WriteString("- List education qualifications\n")
	b.WriteString("- List any certifications or professional qualifications\n")
	b.WriteString("- Return only valid JSON, no additional text or explanations\n")

	return b.String()
}

func buildMatchPrompt(resumeText string, resumeSkills []string, jobs []resumeModel.JobPosting, maxMatches int) string {
	var b strings.Builder

	b.WriteString("You are an expert recruiter and career advisor. Analyze the following resume and job postings to provide intelligent job matching.\n\n")
	b.WriteString("RESUME:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nEXTRACTED SKILLS: ")
	b.WriteString(strings.Join(resumeSkills, ", "))
	b.WriteString("\n\nAVAILABLE JOBS:\n")
	b.WriteString(formatJobs(jobs))
	b.WriteString("\nPlease analyze each job and provide a match score (0-100) based on:\n")
	b.WriteString("1. Skill alignment\n")
	b.WriteString("2. Experience requirements\n")
	b.WriteString("3. Job responsibilities fit\n")
	b.WriteString("4. Career growth potential\n\n")
	fmt.Fprintf(&b, "Return a JSON array with the top %d matches in the following format:\n", maxMatches)
	b.WriteString(`[
    {
        "jobId": 1,
        "jobTitle": "Job Title",
        "company": "Company Name",
        "matchScore": 85.5,
        "matchingSkills": ["skill1", "skill2"],
        "missingSkills": ["skill3", "skill4"],
        "explanation": "Detailed explanation of why this is a good match and what makes the candidate suitable."
    }
]`)
	fmt.Fprintf(&b, "\n\nSort by match score (highest first) and return only the top %d matches.\n", maxMatches)
	b.WriteString("Return only valid JSON, no additional text.\n")

	return b.String()
}

func formatJobs(jobs []resumeModel.JobPosting) string {
	var b strings.Builder
	for i, job := range jobs {
		fmt.Fprintf(&b, "Job %d:\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", orNA(job.Title))
		fmt.Fprintf(&b, "Company: %s\n", orNA(job.Company))
		fmt.Fprintf(&b, "Description: %s\n", orNA(job.Description))
		fmt.Fprintf(&b, "Requirements: %s\n\n", orNA(job.Requirements))
	}
	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
