package entity

import "time"

// ProfileSetting is a durable key/value pair owned by a browser profile.
type ProfileSetting struct {
	ProfileID string
	Key       string
	Value     string
	UpdatedAt time.Time
}

func NewProfileSetting(profileID, key, value string) *ProfileSetting {
	return &ProfileSetting{
		ProfileID: profileID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
}
