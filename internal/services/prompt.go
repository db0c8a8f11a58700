package services

import "fmt"

const (
	maxResumeChars         = 4000
	maxJobDescriptionChars = 2500
)

const analysisSystemPrompt = `You are an expert ATS recruiter and career coach with 10+ years of experience. Your job is to analyze resumes against job requirements with laser precision, focusing on what actually gets candidates past initial screening.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt returns the system and user prompts for a resume gap analysis.
// Inputs are cut to their first 4000 and 2500 characters respectively.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) (string, string) {
	user := fmt.Sprintf(`Analyze this resume against the job requirements with brutal honesty:

RESUME CONTENT:
%s

JOB REQUIREMENTS:
%s

ANALYSIS FRAMEWORK - Provide exactly this format:

**MATCH SCORE: X%%** (Be precise - 0-100%%)

**MATCHING QUALIFICATIONS:**
- [List 5-8 specific skills/experiences that directly match]
- [Be specific about WHERE in resume you found this]

**CRITICAL GAPS:**
- [List 3-6 requirements the candidate clearly lacks]  
- [Focus on dealbreakers that would get resume rejected]

**EXPERIENCE LEVEL FIT:**
[Analyze if candidate's seniority matches job level - junior/mid/senior]

**ATS OPTIMIZATION ISSUES:**
- [Keywords missing that ATS would scan for]
- [Formatting/structure issues that hurt ATS parsing]

**IMMEDIATE ACTIONS TO IMPROVE MATCH:**
1. [Most critical change needed]
2. [Second priority improvement]  
3. [Third priority improvement]

**LIKELIHOOD ASSESSMENT:**
[Would this resume make it past initial screening? Why/why not?]

Be brutally honest and specific. Reference exact phrases from both documents. Focus on what recruiters and ATS systems actually look for.`,
		truncateChars(resumeText, maxResumeChars),
		truncateChars(jobDescription, maxJobDescriptionChars))

	return analysisSystemPrompt, user
}

// truncateChars keeps the first n characters (runes) of s.
func truncateChars(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
