package domain

import "time"

// Notification is an activity notification row. Notifications are fanned
// out to every Direktur profile when staff change business records.
type Notification struct {
	ID            string
	UserID        string // recipient
	ActivityType  string // one of the catalogue keys, e.g. "po_created"
	Title         string
	Message       string
	IsRead        bool
	CreatedBy     string // acting user's ID, empty for system events
	CreatedByName string // acting user's display name at dispatch time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
