package domain

import "time"

// User represents an SSO account. The user id is the partition key for all
// per-user entry and aggregate data; the other services trust the id carried
// in the verified token subject.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
