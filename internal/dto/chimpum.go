package dto

import (
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// CreateChimpumRequest defines the structure for creating a chimpum on an item.
type CreateChimpumRequest struct {
	Code        string       `json:"code" binding:"required,max=20"`
	Title       string       `json:"title" binding:"required,max=100"`
	Description string       `json:"description" binding:"required,max=255"`
	StartDate   time.Time    `json:"startDate" binding:"required"`
	EndDate     time.Time    `json:"endDate" binding:"required"`
	Budget      MoneyRequest `json:"budget" binding:"required"`
	MoreInfo    string       `json:"moreInfo" binding:"omitempty,url"`
}

type ChimpumResponse struct {
	ChimpumID       string       `json:"chimpumID"`
	ItemID          string       `json:"itemID"`
	Code            string       `json:"code"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	CreationMoment  time.Time    `json:"creationMoment"`
	StartDate       time.Time    `json:"startDate"`
	EndDate         time.Time    `json:"endDate"`
	Budget          domain.Money `json:"budget"`
	ConvertedBudget domain.Money `json:"convertedBudget"`
	ExchangeDate    time.Time    `json:"exchangeDate"`
	MoreInfo        string       `json:"moreInfo,omitempty"`
}

func ToChimpumResponse(c *domain.Chimpum) ChimpumResponse {
	return ChimpumResponse{
		ChimpumID:       c.ChimpumID,
		ItemID:          c.ItemID,
		Code:            c.Code,
		Title:           c.Title,
		Description:     c.Description,
		CreationMoment:  c.CreationMoment,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Budget:          c.Budget,
		ConvertedBudget: c.ConvertedBudget,
		ExchangeDate:    c.ExchangeDate,
		MoreInfo:        c.MoreInfo,
	}
}

func ToListChimpumResponse(chimpums []domain.Chimpum) []ChimpumResponse {
	out := make([]ChimpumResponse, len(chimpums))
	for i := range chimpums {
		out[i] = ToChimpumResponse(&chimpums[i])
	}
	return out
}
