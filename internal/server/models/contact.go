package models

import "time"

// NewContact is an incoming submission waiting for the operator.
type NewContact struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Message    string
	UserID     *int64
	ReceivedAt time.Time
}

// SavedContact is a contact promoted out of the new-contacts inbox.
// OriginalReceivedAt is copied from the source row at promotion time.
type SavedContact struct {
	ID                 int64
	Name               string
	Email              string
	Phone              string
	Message            string
	Notes              *string
	UserID             *int64
	OriginalReceivedAt time.Time
	SavedAt            time.Time
}
