package request

import "time"

// ReportPositionRequest carries either a fix or a browser geolocation
// error code (1 permission denied, 2 position unavailable, 3 timeout).
type ReportPositionRequest struct {
	Latitude  *float64   `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64   `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Accuracy  *float64   `json:"accuracy" binding:"omitempty,min=0"`
	Timestamp *time.Time `json:"timestamp"`
	ErrorCode int        `json:"error_code" binding:"omitempty,oneof=1 2 3"`
}

func (r ReportPositionRequest) HasFix() bool {
	return r.Latitude != nil && r.Longitude != nil
}

type MockLocationSettingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type ListLocationsRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type RegionContainsRequest struct {
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lng" binding:"required,min=-180,max=180"`
}
