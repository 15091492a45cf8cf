package jdmatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan2024 = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func fixedMatcher() Matcher {
	return Matcher{Now: func() time.Time { return jan2024 }}
}

func fullStackProfile(start string) *Profile {
	return &Profile{
		Name:       "Jane Doe",
		Profession: "Full Stack Developer",
		Experience: []Experience{{
			Position:    "Software Engineer",
			Company:     "Acme",
			Description: "Built React frontends and Node.js services",
			StartDate:   start,
			Current:     true,
		}},
		Education: []Education{{Degree: "Bachelor of Science", Field: "Computer Science", Institution: "State University"}},
		Skills:    []Skill{{Name: "React"}, {Name: "Node.js"}},
	}
}

func TestMatch_SeniorPosting(t *testing.T) {
	r := fixedMatcher().Match(fullStackProfile("2018-01"), seniorPosting)

	require.NotNil(t, r.Experience.RequiredYears)
	assert.Equal(t, 5, *r.Experience.RequiredYears)
	assert.Equal(t, 6, r.Experience.CandidateYears)
	assert.Equal(t, ExperienceMeets, r.Experience.Status)
	assert.Equal(t, EducationMeets, r.Education.Status)
	assert.Equal(t, []string{"react", "node.js"}, r.MatchedSkills)
	assert.Equal(t, []string{"aws"}, r.MissingSkills)

	// 2/3*40 + 12.5 + 18 + 15
	assert.InDelta(t, 72.1667, r.Breakdown.Total(), 0.001)
	assert.Equal(t, 72, r.Score)
	assert.Equal(t, "B", r.Grade)
	assert.Equal(t, jan2024, r.ComputedAt)

	require.Len(t, r.Actions, 2)
	assert.Equal(t, CategorySkill, r.Actions[0].Category)
	assert.Equal(t, "aws", r.Actions[0].Term)
	assert.Equal(t, CategoryCertification, r.Actions[1].Category)
}

func TestMatch_SeniorPostingExceeds(t *testing.T) {
	r := fixedMatcher().Match(fullStackProfile("2017-01"), seniorPosting)
	assert.Equal(t, 7, r.Experience.CandidateYears)
	assert.Equal(t, ExperienceExceeds, r.Experience.Status)
	assert.Equal(t, 74, r.Score)
	assert.NotEmpty(t, r.Insights.Advantage)
}

func TestMatch_EmptyPosting(t *testing.T) {
	for _, p := range []*Profile{nil, {}, fullStackProfile("2020-01")} {
		r := fixedMatcher().Match(p, "")
		assert.Empty(t, r.MatchedSkills)
		assert.Empty(t, r.MissingSkills)
		assert.Nil(t, r.Experience.RequiredYears)
		assert.Equal(t, ExperienceMeets, r.Experience.Status)
		assert.Equal(t, EducationMeets, r.Education.Status)
		assert.Equal(t, Breakdown{Skills: 20, Keywords: 12.5, Experience: 18, Education: 15}, r.Breakdown)
		assert.Equal(t, 66, r.Score)
		assert.Equal(t, "C", r.Grade)
		assert.Equal(t, "Moderate Match", r.GradeLabel)
		assert.Empty(t, r.Actions)
	}
}

func TestMatch_SkillsPartition(t *testing.T) {
	posting := "Python, Django, PostgreSQL and Docker. Strong communication and teamwork. " +
		"Kafka streaming with Kubernetes."
	p := &Profile{Summary: "Python developer using Django and Kafka; great teamwork"}
	r := fixedMatcher().Match(p, posting)

	want := append(append([]string{}, r.Requirements.HardSkills...), r.Requirements.SoftSkills...)
	got := append(append([]string{}, r.MatchedSkills...), r.MissingSkills...)
	assert.ElementsMatch(t, want, got)

	missing := toSet(r.MissingSkills)
	for _, s := range r.MatchedSkills {
		assert.False(t, missing[s], "%q is both matched and missing", s)
	}
}

func TestMatch_ScoreBounds(t *testing.T) {
	postings := []string{
		"",
		seniorPosting,
		"Lead engineer, 15+ years. PhD in Physics. Rust, Haskell, Elixir, Terraform, Kafka, Spark.",
		"golang golang golang microservices microservices",
	}
	profiles := []*Profile{nil, {}, fullStackProfile("1990-01")}
	for _, text := range postings {
		for _, p := range profiles {
			s := fixedMatcher().QuickMatchScore(p, text)
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	}
}

func TestSuggestedSkills(t *testing.T) {
	posting := "Python, Java, Go via golang, Rust, Ruby, PHP, Swift, Kotlin and Kubernetes."
	m := fixedMatcher()
	p := &Profile{}
	got := m.SuggestedSkills(p, posting)
	missing := m.Match(p, posting).MissingSkills

	assert.Len(t, got, 5)
	assert.Equal(t, missing[:5], got)
}

func TestSuggestedSkills_FewerThanFive(t *testing.T) {
	got := fixedMatcher().SuggestedSkills(fullStackProfile("2018-01"), seniorPosting)
	assert.Equal(t, []string{"aws"}, got)
}

func TestPackageLevelFunctions(t *testing.T) {
	assert.Equal(t, 66, QuickMatchScore(nil, ""))
	assert.Empty(t, SuggestedSkills(nil, ""))
	assert.Equal(t, "C", Match(nil, "").Grade)
}

func TestMatch_DottedSkillNameCountsAsKeyword(t *testing.T) {
	r := fixedMatcher().Match(&Profile{Summary: "node developer"}, "Node.js Node.js backend")
	assert.Equal(t, []string{"node.js"}, r.MissingSkills)
	assert.Equal(t, []string{"node"}, r.MatchedKeywords)
	assert.Equal(t, 25.0, r.Breakdown.Keywords)
}

func TestMatch_ConcurrentCallsAgree(t *testing.T) {
	m := fixedMatcher()
	p := fullStackProfile("2018-01")
	want := m.Match(p, seniorPosting)

	var wg sync.WaitGroup
	results := make([]*Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Match(p, seniorPosting)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
