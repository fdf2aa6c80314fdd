package models

import (
	"encoding/json"
	"time"
)

// ShareRequest carries the snapshot a user wants to publish.
type ShareRequest struct {
	UserID        int64           `json:"userId"`
	UserName      string          `json:"userName"`
	Streak        int             `json:"streak"`
	DaysSucceeded int             `json:"daysSucceeded"`
	Extra         json.RawMessage `json:"shareData,omitempty"`
}

// Share is an immutable published snapshot.
type Share struct {
	ID            string          `json:"shareId"`
	UserID        int64           `json:"userId"`
	UserName      string          `json:"userName"`
	Streak        int             `json:"streak"`
	DaysSucceeded int             `json:"daysSucceeded"`
	Extra         json.RawMessage `json:"shareData"`
	CreatedAt     time.Time       `json:"createdAt"`
	URL           string          `json:"shareUrl,omitempty"`
}
