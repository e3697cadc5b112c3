package dto

type RecordActivityRequest struct {
	Action     string `json:"action"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	MatchScore int    `json:"match_score"`
}
