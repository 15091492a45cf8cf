package jdmatch

import "strings"

// AnalyzeEducation checks which required education terms appear in the
// candidate's degrees and fields.
func AnalyzeEducation(p *Profile, required []string) EducationAssessment {
	var b strings.Builder
	if p != nil {
		for _, e := range p.Education {
			b.WriteString(e.Degree)
			b.WriteByte(' ')
			b.WriteString(e.Field)
			b.WriteByte(' ')
		}
	}
	matched, _ := partition(strings.ToLower(b.String()), required)

	a := EducationAssessment{
		RequiredTerms:  append([]string{}, required...),
		CandidateTerms: matched,
	}
	switch {
	case len(required) == 0 || len(matched) == len(required):
		a.Status = EducationMeets
	case len(matched) > 0:
		a.Status = EducationPartial
	default:
		a.Status = EducationLacking
	}
	return a
}
