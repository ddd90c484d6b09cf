package domain

import "time"

// Field limits enforced by the users table.
const (
	MaxUsernameLen = 100
	MaxEmailLen    = 255
)

// User is the domain entity for an account that owns tasks.
// Tasks are reached through TaskRepo lookups by owner id, not a field here.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}
