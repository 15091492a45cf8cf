package jdmatch

import (
	"fmt"
	"strings"
)

const (
	maxActions        = 8
	maxSkillActions   = 3
	maxKeywordActions = 3
	maxCertsInAction  = 2
)

// Recommend builds the remediation list in fixed precedence: hard-skill gaps,
// keyword gaps, experience, education, certifications, soft skills.
func Recommend(r *Result) []Action {
	actions := []Action{}

	hard := toSet(r.Requirements.HardSkills)
	n := 0
	for _, s := range r.MissingSkills {
		if n == maxSkillActions {
			break
		}
		if !hard[s] {
			continue
		}
		actions = append(actions, Action{
			Priority:    PriorityHigh,
			Category:    CategorySkill,
			Message:     fmt.Sprintf("Add '%s' to your skills section", s),
			Term:        s,
			AutoFixable: true,
		})
		n++
	}

	for i, kw := range r.MissingKeywords {
		if i == maxKeywordActions {
			break
		}
		actions = append(actions, Action{
			Priority:    PriorityMedium,
			Category:    CategoryKeyword,
			Message:     fmt.Sprintf("Include '%s' in your experience descriptions", kw),
			Term:        kw,
			AutoFixable: true,
		})
	}

	if r.Experience.Status == ExperienceLacking {
		actions = append(actions, Action{
			Priority: PriorityHigh,
			Category: CategoryExperience,
			Message: "Highlight relevant projects, freelance work or open-source contributions " +
				"to offset the experience gap",
		})
	}

	if r.Education.Status == EducationLacking && len(r.Education.RequiredTerms) > 0 {
		actions = append(actions, Action{
			Priority: PriorityMedium,
			Category: CategoryEducation,
			Message:  "Consider relevant certifications or courses to compensate for the education requirement",
		})
	}

	if certs := r.Requirements.Certifications; len(certs) > 0 {
		named := certs[:min(len(certs), maxCertsInAction)]
		actions = append(actions, Action{
			Priority: PriorityMedium,
			Category: CategoryCertification,
			Message:  fmt.Sprintf("The posting mentions certifications: %s. List them if you hold them", strings.Join(named, ", ")),
			Term:     named[0],
		})
	}

	soft := toSet(r.Requirements.SoftSkills)
	for _, s := range r.MissingSkills {
		if soft[s] {
			actions = append(actions, Action{
				Priority:    PriorityMedium,
				Category:    CategorySoftSkill,
				Message:     fmt.Sprintf("Show '%s' in your summary or experience bullets", s),
				Term:        s,
				AutoFixable: true,
			})
			break
		}
	}

	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}
	return actions
}
