package models

import "time"

// User is a registered participant. Names are unique.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Registration is the result of registering a name. Existing is true when the
// name was already taken, in which case the stored user is returned.
type Registration struct {
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Existing bool   `json:"existing"`
}
