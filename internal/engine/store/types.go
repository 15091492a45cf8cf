package store

import "github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"

// MatchHistoryListInput is the input for match_history_list.
type MatchHistoryListInput struct {
	Limit    int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 20, max 100)"`
	MinScore int `json:"min_score,omitempty" jsonschema:"Only include matches scoring at least this much (0-100)"`
}

// MatchHistoryListOutput is the output for match_history_list.
type MatchHistoryListOutput struct {
	Matches []HistoryEntry `json:"matches"`
	Total   int            `json:"total"`
}

// MatchHistoryGetInput is the input for match_history_get.
type MatchHistoryGetInput struct {
	ID int64 `json:"id" jsonschema:"History entry ID from match_history_list or jd_match"`
}

// ProfileSaveInput is the input for profile_save.
type ProfileSaveInput struct {
	ID      int64            `json:"id,omitempty" jsonschema:"Existing profile ID to overwrite; omit to create a new profile"`
	Profile *jdmatch.Profile `json:"profile" jsonschema:"Candidate CV: name, profession, summary, experience, education, skills"`
}

// ProfileSaveOutput is the output for profile_save.
type ProfileSaveOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ProfileGetInput is the input for profile_get.
type ProfileGetInput struct {
	ID int64 `json:"id" jsonschema:"Profile ID from profile_save or profile_list"`
}

// ProfileListInput is the input for profile_list.
type ProfileListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum profiles to return (default 20, max 100)"`
}

// ProfileListOutput is the output for profile_list.
type ProfileListOutput struct {
	Profiles []StoredProfile `json:"profiles"`
}
