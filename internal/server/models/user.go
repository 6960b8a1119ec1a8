// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an operator allowed to log in. The secret is stored and compared
// verbatim.
type User struct {
	ID          int64
	UserName    string
	Password    string
	DisplayName string
	LastAccess  *time.Time
}
