// Package jdmatch scores a candidate profile against a free-text job posting.
//
// Matching is purely lexical: catalog terms are searched as lower-cased
// substrings, so "java" is found inside "javascript". Every call builds its
// state from scratch; the only shared data are the read-only catalogs, so all
// exported functions are safe for concurrent use.
package jdmatch

import "time"

// Profile is the candidate's CV as supplied by the caller. Missing fields are
// treated as empty.
type Profile struct {
	Name       string       `json:"name,omitempty"`
	Profession string       `json:"profession,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Skills     []Skill      `json:"skills,omitempty"`
}

// Experience is one employment entry. Dates are "YYYY-MM", "YYYY-MM-DD", "YYYY" or RFC3339.
type Experience struct {
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

type Skill struct {
	Name string `json:"name"`
}

// RequirementSet is what the extractor found in a posting. All entries are
// lower-cased and deduplicated except ExperienceMarkers, which keep the
// posting's original case.
type RequirementSet struct {
	HardSkills        []string `json:"hard_skills"`
	SoftSkills        []string `json:"soft_skills"`
	ExperienceMarkers []string `json:"experience_markers"`
	EducationTerms    []string `json:"education_terms"`
	Certifications    []string `json:"certifications"`
	Tools             []string `json:"tools"`
	Keywords          []string `json:"keywords"`
}

// FlattenedProfile is the searchable form of a Profile.
type FlattenedProfile struct {
	SearchableText string
	SkillNames     []string
}

type ExperienceStatus string

const (
	ExperienceExceeds ExperienceStatus = "exceeds"
	ExperienceMeets   ExperienceStatus = "meets"
	ExperienceClose   ExperienceStatus = "close"
	ExperienceLacking ExperienceStatus = "lacking"
)

type ExperienceAssessment struct {
	RequiredYears  *int             `json:"required_years"`
	CandidateYears int              `json:"candidate_years"`
	Status         ExperienceStatus `json:"status"`
}

type EducationStatus string

const (
	EducationMeets   EducationStatus = "meets"
	EducationPartial EducationStatus = "partial"
	EducationLacking EducationStatus = "lacking"
)

type EducationAssessment struct {
	RequiredTerms  []string        `json:"required_terms"`
	CandidateTerms []string        `json:"candidate_terms"`
	Status         EducationStatus `json:"status"`
}

// Priority orders remediation actions.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Action categories.
const (
	CategorySkill         = "skill"
	CategoryKeyword       = "keyword"
	CategoryExperience    = "experience"
	CategoryEducation     = "education"
	CategoryCertification = "certification"
	CategorySoftSkill     = "soft_skill"
)

// Action is one remediation step for the candidate.
type Action struct {
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	Message     string   `json:"message"`
	Term        string   `json:"term,omitempty"`
	AutoFixable bool     `json:"auto_fixable"`
}

type Insights struct {
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
	// Advantage is empty when the candidate has no standout edge.
	Advantage string `json:"advantage,omitempty"`
}

// Breakdown holds the points each scoring component contributed.
type Breakdown struct {
	Skills     float64 `json:"skills"`
	Keywords   float64 `json:"keywords"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// Total is the unrounded sum of all components.
func (b Breakdown) Total() float64 {
	return b.Skills + b.Keywords + b.Experience + b.Education
}

// Result is the full outcome of matching one profile against one posting.
type Result struct {
	Score           int                  `json:"score"`
	Grade           string               `json:"grade"`
	GradeLabel      string               `json:"grade_label"`
	Breakdown       Breakdown            `json:"breakdown"`
	Requirements    RequirementSet       `json:"requirements"`
	MatchedSkills   []string             `json:"matched_skills"`
	MissingSkills   []string             `json:"missing_skills"`
	MatchedKeywords []string             `json:"matched_keywords"`
	MissingKeywords []string             `json:"missing_keywords"`
	Experience      ExperienceAssessment `json:"experience"`
	Education       EducationAssessment  `json:"education"`
	Actions         []Action             `json:"actions"`
	Insights        Insights             `json:"insights"`
	ComputedAt      time.Time            `json:"computed_at"`
}
