package engine

import "github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"

// Posting is a job description resolved from inline text or a fetched URL.
type Posting struct {
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// --- jd_match ---

type MatchInput struct {
	JobDescription string           `json:"job_description,omitempty" jsonschema:"Full job posting text. Either this or job_url is required"`
	JobURL         string           `json:"job_url,omitempty" jsonschema:"URL of the job posting page, fetched when job_description is empty"`
	Profile        *jdmatch.Profile `json:"profile,omitempty" jsonschema:"Candidate CV: name, profession, summary, experience, education, skills"`
	ProfileID      int64            `json:"profile_id,omitempty" jsonschema:"ID of a profile saved with profile_save, used when profile is omitted"`
	Save           bool             `json:"save,omitempty" jsonschema:"Record the result in match history"`
}

type MatchOutput struct {
	PostingTitle string          `json:"posting_title,omitempty"`
	HistoryID    int64           `json:"history_id,omitempty"`
	Result       *jdmatch.Result `json:"result"`
}

// --- jd_quick_score ---

type QuickScoreInput struct {
	JobDescription string           `json:"job_description,omitempty" jsonschema:"Full job posting text. Either this or job_url is required"`
	JobURL         string           `json:"job_url,omitempty" jsonschema:"URL of the job posting page"`
	Profile        *jdmatch.Profile `json:"profile,omitempty" jsonschema:"Candidate CV"`
	ProfileID      int64            `json:"profile_id,omitempty" jsonschema:"ID of a saved profile"`
}

type QuickScoreOutput struct {
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	GradeLabel string `json:"grade_label"`
}

// --- jd_suggested_skills ---

type SuggestedSkillsInput struct {
	JobDescription string           `json:"job_description,omitempty" jsonschema:"Full job posting text. Either this or job_url is required"`
	JobURL         string           `json:"job_url,omitempty" jsonschema:"URL of the job posting page"`
	Profile        *jdmatch.Profile `json:"profile,omitempty" jsonschema:"Candidate CV"`
	ProfileID      int64            `json:"profile_id,omitempty" jsonschema:"ID of a saved profile"`
	Limit          int              `json:"limit,omitempty" jsonschema:"Maximum skills to return, 1-5 (default 5)"`
}

type SuggestedSkillsOutput struct {
	Skills []string `json:"skills"`
}

// --- jd_extract_requirements ---

type ExtractInput struct {
	JobDescription string `json:"job_description,omitempty" jsonschema:"Full job posting text. Either this or job_url is required"`
	JobURL         string `json:"job_url,omitempty" jsonschema:"URL of the job posting page"`
}

type ExtractOutput struct {
	PostingTitle  string                 `json:"posting_title,omitempty"`
	RequiredYears *int                   `json:"required_years"`
	Requirements  jdmatch.RequirementSet `json:"requirements"`
}
