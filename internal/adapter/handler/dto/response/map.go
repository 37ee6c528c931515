package response

import (
	"time"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/locating"
)

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	District  string  `json:"district"`
}

type MapStateResponse struct {
	SessionID           string              `json:"session_id"`
	Location            *CoordinateResponse `json:"location"`
	Loading             bool                `json:"loading"`
	IsUsingMockLocation bool                `json:"is_using_mock_location"`
	MockLocation        *LocationResponse   `json:"mock_location,omitempty"`
	Phase               string              `json:"phase"`
	Prompt              string              `json:"prompt"`
	ShowMockPrompt      bool                `json:"show_mock_prompt"`
	ErrorMessage        string              `json:"error_message,omitempty"`
	LastUpdate          *time.Time          `json:"last_update,omitempty"`
}

type MockLocationSettingResponse struct {
	Enabled bool `json:"enabled"`
}

type LocationListResponse struct {
	Data       []LocationResponse `json:"data"`
	Pagination *pagination.Info   `json:"pagination"`
}

type RegionContainsResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Within    bool    `json:"within"`
}

func LocationFromValue(loc valueobject.Location) LocationResponse {
	return LocationResponse{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Address:   loc.Address,
		District:  loc.District,
	}
}

func MapStateFromState(sessionID string, st locating.State) MapStateResponse {
	resp := MapStateResponse{
		SessionID:           sessionID,
		Loading:             st.Loading,
		IsUsingMockLocation: st.UsingMock,
		Phase:               string(st.Phase),
		Prompt:              string(st.Prompt),
		ShowMockPrompt:      st.Prompt == locating.PromptEligible,
		ErrorMessage:        st.ErrorMessage,
	}
	if st.Current != nil {
		resp.Location = &CoordinateResponse{Lat: st.Current.Lat, Lng: st.Current.Lng}
	}
	if st.MockLocation != nil {
		loc := LocationFromValue(*st.MockLocation)
		resp.MockLocation = &loc
	}
	if !st.LastUpdate.IsZero() {
		t := st.LastUpdate
		resp.LastUpdate = &t
	}
	return resp
}
