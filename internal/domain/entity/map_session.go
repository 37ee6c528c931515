package entity

import (
	"time"

	"github.com/google/uuid"
)

// MapSession ties a browser session to the profile whose durable settings it reads.
type MapSession struct {
	ID        string
	ProfileID string
	CreatedAt time.Time
}

func NewMapSession(id, profileID string) *MapSession {
	if id == "" {
		id = uuid.NewString()
	}
	if profileID == "" {
		profileID = id
	}
	return &MapSession{
		ID:        id,
		ProfileID: profileID,
		CreatedAt: time.Now().UTC(),
	}
}
