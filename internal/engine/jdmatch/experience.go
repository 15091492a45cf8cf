package jdmatch

import (
	"math"
	"strconv"
	"time"
)

// maxRequiredYears bounds a parsed requirement; larger figures are not tenure.
const maxRequiredYears = 100

// RequiredYears returns the first "<N> years" figure in the posting, or nil.
// Figures above maxRequiredYears count as no requirement.
func RequiredYears(text string) *int {
	m := requiredYearsRe.FindStringSubmatch(clipJobText(text))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > maxRequiredYears {
		return nil
	}
	return &n
}

// CandidateYears sums the month spans of all entries with a parseable start
// date and rounds the total to whole years.
func CandidateYears(entries []Experience, now time.Time) int {
	months := 0
	for _, e := range entries {
		start, ok := parseDate(e.StartDate)
		if !ok {
			continue
		}
		end := now
		if !e.Current {
			if t, ok := parseDate(e.EndDate); ok {
				end = t
			}
		}
		months += max(monthSpan(start, end), 0)
	}
	return int(math.Round(float64(months) / 12))
}

// AnalyzeExperience compares candidate tenure with the posting's requirement.
// Without a stated requirement the candidate meets it.
func AnalyzeExperience(p *Profile, jobText string, now time.Time) ExperienceAssessment {
	var entries []Experience
	if p != nil {
		entries = p.Experience
	}
	a := ExperienceAssessment{
		RequiredYears:  RequiredYears(jobText),
		CandidateYears: CandidateYears(entries, now),
		Status:         ExperienceMeets,
	}
	if a.RequiredYears != nil {
		a.Status = experienceStatus(a.CandidateYears, *a.RequiredYears)
	}
	return a
}

func experienceStatus(candidate, required int) ExperienceStatus {
	switch {
	case candidate >= required+2:
		return ExperienceExceeds
	case candidate >= required:
		return ExperienceMeets
	case candidate >= required-1:
		return ExperienceClose
	default:
		return ExperienceLacking
	}
}

var dateLayouts = []string{"2006-01", "2006-01-02", time.RFC3339, "2006"}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthSpan(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
