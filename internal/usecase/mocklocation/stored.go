package mocklocation

import (
	"encoding/json"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

type StoredStatus int

const (
	StoredAbsent StoredStatus = iota
	StoredPresent
	StoredCorrupted
)

func (s StoredStatus) String() string {
	switch s {
	case StoredPresent:
		return "present"
	case StoredCorrupted:
		return "corrupted"
	default:
		return "absent"
	}
}

// StoredLocation is the outcome of reading the session mock location.
// Location is set only when Status is StoredPresent.
type StoredLocation struct {
	Status   StoredStatus
	Location valueobject.Location
	Raw      string
}

func decodeStoredLocation(raw string) StoredLocation {
	var loc valueobject.Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil || !loc.IsValid() {
		return StoredLocation{Status: StoredCorrupted, Raw: raw}
	}
	return StoredLocation{Status: StoredPresent, Location: loc, Raw: raw}
}
