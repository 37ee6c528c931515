package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/httputil"
)

type SettingsHandler struct {
	locatingSvc LocatingService
}

func NewSettingsHandler(locatingSvc LocatingService) *SettingsHandler {
	return &SettingsHandler{locatingSvc: locatingSvc}
}

// GetMockLocation godoc
//
//	@Summary		Mock location setting
//	@Description	Explicit choice if one was saved, otherwise the default for an unknown locale
//	@Tags			settings
//	@Produce		json
//	@Param			X-Profile-ID	header		string	false	"Browser profile id"
//	@Success		200				{object}	response.MockLocationSettingResponse
//	@Router			/settings/mock-location [get]
func (h *SettingsHandler) GetMockLocation(c *gin.Context) {
	enabled, err := h.locatingSvc.MockLocationEnabled(c.Request.Context(), httputil.GetSession(c))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MockLocationSettingResponse{Enabled: enabled})
}

// SetMockLocation godoc
//
//	@Summary		Save the mock location setting
//	@Description	Disabling also leaves mock mode for the current session
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.MockLocationSettingRequest	true	"Setting"
//	@Success		200		{object}	response.MockLocationSettingResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Router			/settings/mock-location [put]
func (h *SettingsHandler) SetMockLocation(c *gin.Context) {
	var req request.MockLocationSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if err := h.locatingSvc.SetMockLocationEnabled(c.Request.Context(), httputil.GetSession(c), *req.Enabled); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MockLocationSettingResponse{Enabled: *req.Enabled})
}
