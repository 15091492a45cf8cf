package jdmatch

import "time"

const maxSuggestedSkills = 5

// Matcher runs the matching pipeline. The zero value uses the wall clock.
type Matcher struct {
	// Now returns the reference time for open-ended experience entries.
	Now func() time.Time
}

func (m Matcher) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Match scores p against jobText. It never fails: empty or malformed input
// flows through neutral defaults.
func (m Matcher) Match(p *Profile, jobText string) *Result {
	now := m.now()
	jobText = clipJobText(jobText)

	rs := ExtractRequirements(jobText)
	fp := Flatten(p)

	r := &Result{Requirements: rs, ComputedAt: now}
	r.MatchedSkills, r.MissingSkills = MatchSkills(fp, rs)
	r.MatchedKeywords, r.MissingKeywords = MatchKeywords(fp, rs)
	r.Experience = AnalyzeExperience(p, jobText, now)
	r.Education = AnalyzeEducation(p, rs.EducationTerms)

	r.Breakdown = ScoreBreakdown(
		len(r.MatchedSkills), len(r.MissingSkills),
		len(r.MatchedKeywords), len(r.MissingKeywords),
		r.Experience.Status, r.Education.Status,
	)
	r.Score = FinalScore(r.Breakdown)
	r.Grade, r.GradeLabel = Grade(r.Score)
	r.Actions = Recommend(r)
	r.Insights = BuildInsights(r, fp)
	return r
}

// QuickMatchScore returns only the score.
func (m Matcher) QuickMatchScore(p *Profile, jobText string) int {
	return m.Match(p, jobText).Score
}

// SuggestedSkills returns up to five missing skills, in gap order.
func (m Matcher) SuggestedSkills(p *Profile, jobText string) []string {
	missing := m.Match(p, jobText).MissingSkills
	return append([]string{}, missing[:min(len(missing), maxSuggestedSkills)]...)
}

// Match scores p against jobText using the wall clock.
func Match(p *Profile, jobText string) *Result { return Matcher{}.Match(p, jobText) }

// QuickMatchScore returns the score of Match.
func QuickMatchScore(p *Profile, jobText string) int { return Matcher{}.QuickMatchScore(p, jobText) }

// SuggestedSkills returns up to five skills from Match's missing list.
func SuggestedSkills(p *Profile, jobText string) []string {
	return Matcher{}.SuggestedSkills(p, jobText)
}
