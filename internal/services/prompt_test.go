package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysisPrompt_Truncates(t *testing.T) {
	resume := strings.Repeat("r", 4000) + "OVERFLOW-RESUME"
	job := strings.Repeat("j", 2500) + "OVERFLOW-JOB"

	system, user := NewPromptBuilder().BuildAnalysisPrompt(resume, job)

	assert.Equal(t, analysisSystemPrompt, system)
	assert.Contains(t, user, "RESUME CONTENT:\n"+strings.Repeat("r", 4000)+"\n\nJOB REQUIREMENTS:\n")
	assert.Contains(t, user, "JOB REQUIREMENTS:\n"+strings.Repeat("j", 2500)+"\n\nANALYSIS FRAMEWORK")
	assert.NotContains(t, user, "OVERFLOW")
}

func TestBuildAnalysisPrompt_ShortInputsKeptWhole(t *testing.T) {
	_, user := NewPromptBuilder().BuildAnalysisPrompt("Go developer", "Backend role")

	assert.True(t, strings.HasPrefix(user, "Analyze this resume against the job requirements with brutal honesty:\n\nRESUME CONTENT:\nGo developer\n\nJOB REQUIREMENTS:\nBackend role\n\n"))
	assert.True(t, strings.HasSuffix(user, "Focus on what recruiters and ATS systems actually look for."))
}

func TestBuildAnalysisPrompt_SectionOrder(t *testing.T) {
	_, user := NewPromptBuilder().BuildAnalysisPrompt("resume", "job")

	sections := []string{
		"RESUME CONTENT:",
		"JOB REQUIREMENTS:",
		"ANALYSIS FRAMEWORK - Provide exactly this format:",
		"**MATCH SCORE: X%** (Be precise - 0-100%)",
		"**MATCHING QUALIFICATIONS:**",
		"**CRITICAL GAPS:**",
		"**EXPERIENCE LEVEL FIT:**",
		"**ATS OPTIMIZATION ISSUES:**",
		"**IMMEDIATE ACTIONS TO IMPROVE MATCH:**",
		"**LIKELIHOOD ASSESSMENT:**",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(user, s)
		require.NotEqual(t, -1, idx, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
}

func TestTruncateChars_CountsRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateChars("héllo", 4))
	assert.Equal(t, "日本", truncateChars("日本語", 2))
	assert.Equal(t, "abc", truncateChars("abc", 10))
	assert.Equal(t, "", truncateChars("abc", 0))
}
