package domain

import "time"

// ItemType distinguishes components from tools.
type ItemType string

const (
	ItemComponent ItemType = "COMPONENT"
	ItemTool      ItemType = "TOOL"
)

// IsValid reports whether t is a known item type.
func (t ItemType) IsValid() bool {
	return t == ItemComponent || t == ItemTool
}

// Item is a component or tool offered by an inventor. ConvertedPrice is the
// retail price expressed in the base currency at ExchangeDate.
type Item struct {
	ItemID         string    `json:"itemID"`
	InventorID     string    `json:"inventorID"`
	Type           ItemType  `json:"type"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Technology     string    `json:"technology"`
	Description    string    `json:"description"`
	RetailPrice    Money     `json:"retailPrice"`
	ConvertedPrice Money     `json:"convertedPrice"`
	ExchangeDate   time.Time `json:"exchangeDate"`
	MoreInfo       string    `json:"moreInfo"`
	Published      bool      `json:"published"`
	AuditFields
}
