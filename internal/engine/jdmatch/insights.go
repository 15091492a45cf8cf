package jdmatch

import (
	"fmt"
	"strings"
)

// Insight thresholds.
const (
	strengthSkillCount   = 5
	strengthKeywordCount = 5
	strengthExtraSkills  = 3
	gapMissingKeywords   = 5
	advantageSkillCount  = 8
)

// BuildInsights derives qualitative strengths, gaps and a standout advantage.
func BuildInsights(r *Result, fp FlattenedProfile) Insights {
	in := Insights{Strengths: []string{}, Gaps: []string{}}
	exp := r.Experience

	if len(r.MatchedSkills) >= strengthSkillCount {
		in.Strengths = append(in.Strengths,
			fmt.Sprintf("Strong technical alignment: %d of the required skills are on your profile", len(r.MatchedSkills)))
	}
	switch exp.Status {
	case ExperienceExceeds:
		in.Strengths = append(in.Strengths,
			fmt.Sprintf("Your %d years of experience exceed the requirement", exp.CandidateYears))
	case ExperienceMeets:
		in.Strengths = append(in.Strengths, "Your experience level meets the requirement")
	}
	if len(r.MatchedKeywords) >= strengthKeywordCount {
		in.Strengths = append(in.Strengths, "Good ATS optimization: your profile reuses the posting's key terms")
	}
	if extras := extraSkills(fp.SkillNames, r.MatchedSkills, r.MissingSkills); extras >= strengthExtraSkills {
		in.Strengths = append(in.Strengths,
			fmt.Sprintf("%d additional skills beyond the posting can differentiate you", extras))
	}

	if len(r.MissingSkills) > len(r.MatchedSkills) {
		in.Gaps = append(in.Gaps,
			fmt.Sprintf("Skill gap: %d required skills are missing versus %d matched", len(r.MissingSkills), len(r.MatchedSkills)))
	}
	if exp.Status == ExperienceLacking && exp.RequiredYears != nil {
		in.Gaps = append(in.Gaps,
			fmt.Sprintf("Experience gap: the role asks for %d+ years, your profile shows %d", *exp.RequiredYears, exp.CandidateYears))
	}
	if len(r.MissingKeywords) > gapMissingKeywords {
		in.Gaps = append(in.Gaps, "Many posting keywords are absent: tailor your CV to this role")
	}

	if exp.Status == ExperienceExceeds {
		in.Advantage = "Your experience exceeds what the role asks for, which positions you for senior responsibilities"
	}
	if in.Advantage == "" && len(r.MatchedSkills) >= advantageSkillCount {
		in.Advantage = "Your broad coverage of the required skill set stands out"
	}
	return in
}

// extraSkills counts candidate skills that the posting neither asks for nor lacks.
func extraSkills(names, matched, missing []string) int {
	seen := toSet(matched)
	for _, m := range missing {
		seen[m] = true
	}
	n := 0
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		n++
	}
	return n
}
