package domain

import "time"

// PatronageStatus tracks the inventor's answer to a patronage proposal.
type PatronageStatus string

const (
	PatronageProposed PatronageStatus = "PROPOSED"
	PatronageAccepted PatronageStatus = "ACCEPTED"
	PatronageDenied   PatronageStatus = "DENIED"
)

// Patronage is a funding proposal from a patron to an inventor.
type Patronage struct {
	PatronageID    string          `json:"patronageID"`
	PatronID       string          `json:"patronID"`
	InventorID     string          `json:"inventorID"`
	Status         PatronageStatus `json:"status"`
	Code           string          `json:"code"`
	LegalStuff     string          `json:"legalStuff"`
	Budget         Money           `json:"budget"`
	CreationMoment time.Time       `json:"creationMoment"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	MoreInfo       string          `json:"moreInfo"`
	Published      bool            `json:"published"`
	AuditFields
}
