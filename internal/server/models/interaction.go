package models

import "time"

// Contact kind tags, naming the table a contact lived in when an
// interaction was recorded.
const (
	ContactKindNew   = "novo"
	ContactKindSaved = "salvo"
)

// InteractionSaved tags the history entry written by a promotion.
const InteractionSaved = "salvo"

// Interaction is an append-only history entry.
type Interaction struct {
	ID          int64
	ContactID   int64
	ContactKind string
	Kind        string
	UserID      *int64
	CreatedAt   time.Time
}
