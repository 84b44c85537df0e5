package domain

import "time"

// PurchaseOrder is a purchase order record. PODate is a calendar date in
// "YYYY-MM-DD" form; the business filters and sorts on it as text.
type PurchaseOrder struct {
	ID           string
	NoPO         string // unique PO number
	PODate       string
	CustomerName string
	PartAssyName string
	Quantity     int
	SalesName    string

	// Attribution stamped at creation and kept across updates.
	CreatedByUserID          string
	CreatedByUserDisplayName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchaseOrderFilter narrows purchase order listings. Zero values mean
// "don't filter".
type PurchaseOrderFilter struct {
	StartDate       string // inclusive
	EndDate         string // inclusive
	CreatedByUserID string
	SalesName       string // case-insensitive substring
}
