package domain

import "time"

// Chimpum is a budgeted initiative an inventor attaches to one of their items.
type Chimpum struct {
	ChimpumID       string    `json:"chimpumID"`
	ItemID          string    `json:"itemID"`
	InventorID      string    `json:"inventorID"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CreationMoment  time.Time `json:"creationMoment"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Budget          Money     `json:"budget"`
	ConvertedBudget Money     `json:"convertedBudget"`
	ExchangeDate    time.Time `json:"exchangeDate"`
	MoreInfo        string    `json:"moreInfo"`
	AuditFields
}
