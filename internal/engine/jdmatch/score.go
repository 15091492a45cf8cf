package jdmatch

import "math"

// Component weights and the neutral credit awarded when a posting states no
// requirement for a component (half the weight).
const (
	SkillsWeight     = 40.0
	KeywordsWeight   = 25.0
	ExperienceWeight = 20.0
	EducationWeight  = 15.0

	neutralSkills   = SkillsWeight / 2
	neutralKeywords = KeywordsWeight / 2
)

var experiencePoints = map[ExperienceStatus]float64{
	ExperienceExceeds: 20,
	ExperienceMeets:   18,
	ExperienceClose:   12,
	ExperienceLacking: 5,
}

var educationPoints = map[EducationStatus]float64{
	EducationMeets:   15,
	EducationPartial: 10,
	EducationLacking: 3,
}

func ratioPoints(matched, missing int, weight, neutral float64) float64 {
	total := matched + missing
	if total == 0 {
		return neutral
	}
	return float64(matched) / float64(total) * weight
}

// ScoreBreakdown computes each component's contribution.
func ScoreBreakdown(matchedSkills, missingSkills, matchedKeywords, missingKeywords int,
	exp ExperienceStatus, edu EducationStatus) Breakdown {
	return Breakdown{
		Skills:     ratioPoints(matchedSkills, missingSkills, SkillsWeight, neutralSkills),
		Keywords:   ratioPoints(matchedKeywords, missingKeywords, KeywordsWeight, neutralKeywords),
		Experience: experiencePoints[exp],
		Education:  educationPoints[edu],
	}
}

// FinalScore rounds the breakdown total to an integer in [0, 100].
func FinalScore(b Breakdown) int {
	s := int(math.Round(b.Total()))
	return min(max(s, 0), 100)
}

type gradeBand struct {
	min   int
	grade string
	label string
}

var gradeBands = []gradeBand{
	{85, "A", "Excellent Match"},
	{70, "B", "Strong Match"},
	{55, "C", "Moderate Match"},
	{40, "D", "Weak Match"},
}

// Grade maps a score to a letter grade and its label.
func Grade(score int) (grade, label string) {
	for _, b := range gradeBands {
		if score >= b.min {
			return b.grade, b.label
		}
	}
	return "F", "Poor Match"
}
