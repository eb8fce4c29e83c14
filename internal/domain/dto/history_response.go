package dto

import "github.com/dmytroh/fxpulse/internal/domain/models"

// HistoryResponse is the JSON structure returned by GET /api/v1/history.
//
// Fields mirror the aggregate result plus the request echo; the DTO is kept
// separate from the domain model so the API surface can evolve without
// touching business logic.
type HistoryResponse struct {
	Status     models.Status        `json:"status" example:"partial"`
	Requested  int                  `json:"requested_days" example:"5"`
	Currencies []string             `json:"currencies" example:"USD,EUR"`
	Days       []models.DailyRecord `json:"days"`
	Failures   map[string]string    `json:"failures,omitempty"`
}

// NewHistoryResponse maps a domain result onto the response DTO.
func NewHistoryResponse(res models.HistoryResult, requested int, currencies []string) HistoryResponse {
	return HistoryResponse{
		Status:     res.Status,
		Requested:  requested,
		Currencies: currencies,
		Days:       res.Days,
		Failures:   res.Failures,
	}
}
