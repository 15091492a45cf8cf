package jdmatch

import (
	"sort"
	"strings"
	"unicode"

	"github.com/anatolykoptev/go-kit/strutil"
)

// MaxJobTextRunes caps the posting length scanned by the extractor.
const MaxJobTextRunes = 50000

const maxKeywords = 15

// clipJobText bounds catalog-scan cost on oversized input.
func clipJobText(text string) string {
	return strutil.TruncateWith(text, MaxJobTextRunes, "")
}

// ExtractRequirements scans posting text against the catalogs. Empty text
// yields an empty (non-nil) RequirementSet.
func ExtractRequirements(text string) RequirementSet {
	text = clipJobText(text)
	lower := strings.ToLower(text)

	rs := RequirementSet{
		HardSkills:        []string{},
		SoftSkills:        containedTerms(lower, softSkills),
		ExperienceMarkers: experienceMarkers(text),
		EducationTerms:    containedTerms(lower, educationTerms),
		Certifications:    certifications(lower),
		Tools:             []string{},
		Keywords:          []string{},
	}
	rs.HardSkills = append(rs.HardSkills, containedTerms(lower, hardSkillWords)...)
	rs.HardSkills = appendUnique(rs.HardSkills, containedTerms(lower, hardSkillPhrases)...)

	hard := toSet(rs.HardSkills)
	for _, t := range containedTerms(lower, toolCatalog) {
		if !hard[t] {
			rs.Tools = append(rs.Tools, t)
		}
	}

	soft := toSet(rs.SoftSkills)
	for _, kw := range frequentKeywords(lower) {
		if !hard[kw] && !soft[kw] {
			rs.Keywords = append(rs.Keywords, kw)
		}
	}
	return rs
}

// containedTerms returns catalog entries found in lower as substrings, in catalog order.
func containedTerms(lower string, catalog []string) []string {
	out := []string{}
	if lower == "" {
		return out
	}
	for _, term := range catalog {
		if strings.Contains(lower, term) {
			out = appendUnique(out, term)
		}
	}
	return out
}

func experienceMarkers(text string) []string {
	out := []string{}
	for _, re := range experienceMarkerPatterns {
		for _, m := range re.FindAllString(text, -1) {
			out = appendUnique(out, m)
		}
	}
	return out
}

func certifications(lower string) []string {
	out := []string{}
	for _, m := range certificationPhraseRe.FindAllString(lower, -1) {
		out = appendUnique(out, collapseSpaces(m))
	}
	for _, m := range certificationAcronymRe.FindAllString(lower, -1) {
		out = appendUnique(out, collapseSpaces(m))
	}
	return out
}

// tokenize splits lower-cased text on every rune that is not a letter or digit
// and keeps words of more than two runes.
func tokenize(lower string) []string {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := words[:0]
	for _, w := range words {
		if len([]rune(w)) > 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// frequentKeywords returns up to maxKeywords non-stop-word tokens longer than
// three runes that occur at least twice, most frequent first. Ties keep
// first-occurrence order.
func frequentKeywords(lower string) []string {
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokenize(lower) {
		if stopWords[tok] || len([]rune(tok)) <= 3 {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	var frequent []string
	for _, tok := range order {
		if counts[tok] >= 2 {
			frequent = append(frequent, tok)
		}
	}
	sort.SliceStable(frequent, func(i, j int) bool {
		return counts[frequent[i]] > counts[frequent[j]]
	})
	if len(frequent) > maxKeywords {
		frequent = frequent[:maxKeywords]
	}
	return frequent
}

func appendUnique(list []string, items ...string) []string {
	for _, it := range items {
		dup := false
		for _, existing := range list {
			if existing == it {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, it)
		}
	}
	return list
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
