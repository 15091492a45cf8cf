package jdmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const seniorPosting = "Senior Software Engineer, 5+ years experience, React, Node.js, AWS. " +
	"Bachelor's in Computer Science required."

func TestExtractRequirements_Empty(t *testing.T) {
	rs := ExtractRequirements("")
	assert.Empty(t, rs.HardSkills)
	assert.Empty(t, rs.SoftSkills)
	assert.Empty(t, rs.ExperienceMarkers)
	assert.Empty(t, rs.EducationTerms)
	assert.Empty(t, rs.Certifications)
	assert.Empty(t, rs.Tools)
	assert.Empty(t, rs.Keywords)
	assert.NotNil(t, rs.HardSkills, "empty sets should encode as [] not null")
}

func TestExtractRequirements_SeniorPosting(t *testing.T) {
	rs := ExtractRequirements(seniorPosting)
	assert.Equal(t, []string{"react", "node.js", "aws"}, rs.HardSkills)
	assert.Empty(t, rs.SoftSkills)
	assert.Equal(t, []string{"5+ years experience", "Senior"}, rs.ExperienceMarkers)
	assert.Equal(t, []string{"bachelor", "computer science"}, rs.EducationTerms)
	assert.Equal(t, []string{"aws"}, rs.Certifications)
	assert.Empty(t, rs.Keywords)
}

func TestExtractRequirements_PhrasesAndSoftSkills(t *testing.T) {
	rs := ExtractRequirements("We value Leadership and clear communication. " +
		"Background in Machine Learning and full stack delivery.")
	assert.Contains(t, rs.HardSkills, "machine learning")
	assert.Contains(t, rs.HardSkills, "full stack")
	assert.Equal(t, []string{"communication", "leadership"}, rs.SoftSkills)
}

func TestExtractRequirements_ToolsExcludeHardSkills(t *testing.T) {
	rs := ExtractRequirements("Experience with Docker, Jira and Git")
	assert.Contains(t, rs.HardSkills, "docker")
	assert.Equal(t, []string{"git", "jira"}, rs.Tools)
}

func TestExtractRequirements_Certifications(t *testing.T) {
	rs := ExtractRequirements("AWS Certified Solutions Architect preferred. PMP certification is a plus. " +
		"Certified Kubernetes Administrator welcome.")
	assert.Contains(t, rs.Certifications, "aws certified")
	assert.Contains(t, rs.Certifications, "pmp certification")
	assert.Contains(t, rs.Certifications, "certified kubernetes")
	for _, c := range rs.Certifications {
		assert.Equal(t, strings.ToLower(c), c)
	}
}

func TestExtractRequirements_ExperienceMarkerOrder(t *testing.T) {
	rs := ExtractRequirements("Staff or Principal engineer. Junior devs welcome, Sr. mentors, entry-level ok, mid-level too.")
	assert.Equal(t, []string{"Sr.", "Junior", "mid-level", "entry-level", "Staff", "Principal"}, rs.ExperienceMarkers)
}

func TestFrequentKeywords(t *testing.T) {
	text := "Kubernetes operators deploy pipelines. Pipelines deploy kubernetes clusters. " +
		"Observability matters; observability wins. pipelines"
	rs := ExtractRequirements(text)
	assert.Equal(t, []string{"pipelines", "deploy", "observability"}, rs.Keywords)
}

func TestFrequentKeywords_CapAndFilters(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		w := "token" + string(rune('a'+i))
		b.WriteString(w + " " + w + " ")
	}
	b.WriteString("the the with with api api")
	kws := frequentKeywords(strings.ToLower(b.String()))
	assert.Len(t, kws, maxKeywords)
	assert.NotContains(t, kws, "the")
	assert.NotContains(t, kws, "api", "tokens of three runes or fewer are dropped")
}

func TestTokenize(t *testing.T) {
	got := tokenize("we use c++, c#, node.js. go is ok, e.g. billing")
	assert.Equal(t, []string{"use", "node", "billing"}, got)
}

func TestFrequentKeywords_SplitsDottedNames(t *testing.T) {
	rs := ExtractRequirements("Our platform runs Node.js. Node.js powers the backend, e.g. billing.")
	assert.Equal(t, []string{"node.js"}, rs.HardSkills)
	assert.Equal(t, []string{"node"}, rs.Keywords)
}

func TestExtractRequirements_ClipsLongInput(t *testing.T) {
	text := strings.Repeat("x ", MaxJobTextRunes/2) + "python"
	rs := ExtractRequirements(text)
	assert.NotContains(t, rs.HardSkills, "python")
}
