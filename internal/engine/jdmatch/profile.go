package jdmatch

import "strings"

// Flatten reduces a profile to one lower-cased searchable string. Field order:
// name, profession, summary, each experience (position, company, description),
// each education (degree, field, institution), then skill names.
func Flatten(p *Profile) FlattenedProfile {
	if p == nil {
		return FlattenedProfile{SkillNames: []string{}}
	}
	parts := []string{p.Name, p.Profession, p.Summary}
	for _, e := range p.Experience {
		parts = append(parts, e.Position, e.Company, e.Description)
	}
	for _, e := range p.Education {
		parts = append(parts, e.Degree, e.Field, e.Institution)
	}
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	parts = append(parts, names...)

	nonEmpty := parts[:0]
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return FlattenedProfile{
		SearchableText: strings.ToLower(strings.Join(nonEmpty, " ")),
		SkillNames:     names,
	}
}
