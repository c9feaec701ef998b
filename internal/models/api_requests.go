package models

// OpenMatchRequest opens a match for tracking. EnforceRoster overrides the
// server default when set.
type OpenMatchRequest struct {
	EnforceRoster *bool `json:"enforce_roster"`
}

type SetPeriodRequest struct {
	Period string `json:"period" validate:"required"`
}

type RecordShotRequest struct {
	PlayerID string      `json:"player_id" validate:"required"`
	Side     Side        `json:"side" validate:"omitempty,oneof=home away"`
	Period   string      `json:"period"`
	ShotType ShotTypeKey `json:"shot_type" validate:"required"`
	Result   ShotResult  `json:"result" validate:"required,oneof=made miss"`
}

type RecordFoulRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Side     Side   `json:"side" validate:"omitempty,oneof=home away"`
	Period   string `json:"period"`
}

type ToggleRosterRequest struct {
	AthleteID string `json:"athlete_id" validate:"required"`
}

type RosterResponse struct {
	Side    Side     `json:"side"`
	Members []string `json:"members"`
	Size    int      `json:"size"`
	Cap     int      `json:"cap"`
	Outcome string   `json:"outcome,omitempty"`
}

type ImportResponse struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}
