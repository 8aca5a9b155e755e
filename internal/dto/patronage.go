package dto

import (
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// PatronageRequest carries the editable fields of a patronage.
type PatronageRequest struct {
	InventorID string       `json:"inventorID" binding:"required"`
	Code       string       `json:"code" binding:"required,max=20"`
	LegalStuff string       `json:"legalStuff" binding:"required,max=255"`
	Budget     MoneyRequest `json:"budget" binding:"required"`
	StartDate  time.Time    `json:"startDate" binding:"required"`
	EndDate    time.Time    `json:"endDate" binding:"required"`
	MoreInfo   string       `json:"moreInfo" binding:"omitempty,url"`
}

// DecidePatronageRequest is an inventor's answer to a proposal.
type DecidePatronageRequest struct {
	Status domain.PatronageStatus `json:"status" binding:"required,oneof=ACCEPTED DENIED"`
}

// PatronageResponse defines the structure for API responses containing patronage details.
type PatronageResponse struct {
	PatronageID    string                 `json:"patronageID"`
	PatronID       string                 `json:"patronID"`
	InventorID     string                 `json:"inventorID"`
	Status         domain.PatronageStatus `json:"status"`
	Code           string                 `json:"code"`
	LegalStuff     string                 `json:"legalStuff"`
	Budget         domain.Money           `json:"budget"`
	CreationMoment time.Time              `json:"creationMoment"`
	StartDate      time.Time              `json:"startDate"`
	EndDate        time.Time              `json:"endDate"`
	MoreInfo       string                 `json:"moreInfo,omitempty"`
	Published      bool                   `json:"published"`
}

// ToPatronageResponse converts a domain.Patronage to PatronageResponse DTO
func ToPatronageResponse(p *domain.Patronage) PatronageResponse {
	return PatronageResponse{
		PatronageID:    p.PatronageID,
		PatronID:       p.PatronID,
		InventorID:     p.InventorID,
		Status:         p.Status,
		Code:           p.Code,
		LegalStuff:     p.LegalStuff,
		Budget:         p.Budget,
		CreationMoment: p.CreationMoment,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		MoreInfo:       p.MoreInfo,
		Published:      p.Published,
	}
}

// ToListPatronageResponse converts a slice of domain.Patronage
func ToListPatronageResponse(patronages []domain.Patronage) []PatronageResponse {
	out := make([]PatronageResponse, len(patronages))
	for i := range patronages {
		out[i] = ToPatronageResponse(&patronages[i])
	}
	return out
}
