package jdmatch

import "strings"

// partition splits terms into those contained in text and those absent,
// preserving input order. text must already be lower-cased.
func partition(text string, terms []string) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	for _, t := range terms {
		if strings.Contains(text, strings.ToLower(t)) {
			matched = append(matched, t)
		} else {
			missing = append(missing, t)
		}
	}
	return matched, missing
}

// MatchSkills partitions hard then soft skills against the flattened profile.
func MatchSkills(fp FlattenedProfile, rs RequirementSet) (matched, missing []string) {
	all := make([]string, 0, len(rs.HardSkills)+len(rs.SoftSkills))
	all = append(all, rs.HardSkills...)
	all = appendUnique(all, rs.SoftSkills...)
	return partition(fp.SearchableText, all)
}

// MatchKeywords partitions the posting's frequent keywords.
func MatchKeywords(fp FlattenedProfile, rs RequirementSet) (matched, missing []string) {
	return partition(fp.SearchableText, rs.Keywords)
}
