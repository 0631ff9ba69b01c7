package dto

// SummaryResponse wraps the aggregate commentary over recent entries.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
