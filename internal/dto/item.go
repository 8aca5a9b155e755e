package dto

import (
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// CreateItemRequest defines the structure for creating a new item.
type CreateItemRequest struct {
	Type        domain.ItemType `json:"type" binding:"required,oneof=COMPONENT TOOL"`
	Name        string          `json:"name" binding:"required,max=100"`
	Code        string          `json:"code" binding:"required,max=20"`
	Technology  string          `json:"technology" binding:"required,max=100"`
	Description string          `json:"description" binding:"required,max=255"`
	RetailPrice MoneyRequest    `json:"retailPrice" binding:"required"`
	MoreInfo    string          `json:"moreInfo" binding:"omitempty,url"`
}

// ListItemsQuery filters the public item listing.
type ListItemsQuery struct {
	Type domain.ItemType `form:"type" binding:"required,oneof=COMPONENT TOOL"`
}

// ItemResponse defines the structure for API responses containing item details.
type ItemResponse struct {
	ItemID         string          `json:"itemID"`
	InventorID     string          `json:"inventorID"`
	Type           domain.ItemType `json:"type"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	Technology     string          `json:"technology"`
	Description    string          `json:"description"`
	RetailPrice    domain.Money    `json:"retailPrice"`
	ConvertedPrice domain.Money    `json:"convertedPrice"`
	ExchangeDate   time.Time       `json:"exchangeDate"`
	MoreInfo       string          `json:"moreInfo,omitempty"`
	Published      bool            `json:"published"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:         i.ItemID,
		InventorID:     i.InventorID,
		Type:           i.Type,
		Name:           i.Name,
		Code:           i.Code,
		Technology:     i.Technology,
		Description:    i.Description,
		RetailPrice:    i.RetailPrice,
		ConvertedPrice: i.ConvertedPrice,
		ExchangeDate:   i.ExchangeDate,
		MoreInfo:       i.MoreInfo,
		Published:      i.Published,
		CreatedAt:      i.CreatedAt,
		LastUpdatedAt:  i.LastUpdatedAt,
	}
}

// ToListItemResponse converts a slice of domain.Item
func ToListItemResponse(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return out
}
