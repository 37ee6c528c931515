package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/locating"
)

var errFixOrCode = errors.New("either latitude and longitude or error_code is required")

type MapHandler struct {
	locatingSvc LocatingService
}

func NewMapHandler(locatingSvc LocatingService) *MapHandler {
	return &MapHandler{locatingSvc: locatingSvc}
}

// Mount godoc
//
//	@Summary		Mount the map session
//	@Description	Starts location acquisition for the session. A stored mock location is adopted immediately.
//	@Tags			map
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Browser session id"
//	@Param			X-Profile-ID	header		string	false	"Browser profile id"
//	@Success		200				{object}	response.MapStateResponse
//	@Router			/map/session [post]
func (h *MapHandler) Mount(c *gin.Context) {
	session := httputil.GetSession(c)

	st, err := h.locatingSvc.Mount(c.Request.Context(), locating.MountInput{
		Session:  session,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MapStateFromState(session.ID, st))
}

// Location godoc
//
//	@Summary	Current map location
//	@Tags		map
//	@Produce	json
//	@Param		X-Session-ID	header		string	true	"Browser session id"
//	@Success	200				{object}	response.MapStateResponse
//	@Failure	404				{object}	httputil.ErrorResponse
//	@Router		/map/location [get]
func (h *MapHandler) Location(c *gin.Context) {
	session := httputil.GetSession(c)

	st, err := h.locatingSvc.State(c.Request.Context(), session.ID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.MapStateFromState(session.ID, st))
}

// Unmount godoc
//
//	@Summary	Tear down the map session
//	@Tags		map
//	@Param		X-Session-ID	header	string	true	"Browser session id"
//	@Success	204
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/map/session [delete]
func (h *MapHandler) Unmount(c *gin.Context) {
	session := httputil.GetSession(c)

	if err := h.locatingSvc.Unmount(c.Request.Context(), session.ID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// ReportPosition godoc
//
//	@Summary		Report a device position
//	@Description	Relays a browser geolocation fix or error code to the session
//	@Tags			map
//	@Accept			json
//	@Param			X-Session-ID	header	string							true	"Browser session id"
//	@Param			request			body	request.ReportPositionRequest	true	"Fix or error code"
//	@Success		202
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Router			/map/positions [post]
func (h *MapHandler) ReportPosition(c *gin.Context) {
	var req request.ReportPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}
	if !req.HasFix() && req.ErrorCode == 0 {
		httputil.ValidationError(c, errFixOrCode)
		return
	}

	session := httputil.GetSession(c)
	report := locating.PositionReport{
		SessionID: session.ID,
		ErrorCode: req.ErrorCode,
	}
	if req.HasFix() {
		ts := time.Now().UTC()
		if req.Timestamp != nil {
			ts = *req.Timestamp
		}
		pos := valueobject.NewPosition(*req.Latitude, *req.Longitude, req.Accuracy, ts)
		report.Position = &pos
	}

	if err := h.locatingSvc.ReportPosition(c.Request.Context(), report); err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// AcceptMockLocation godoc
//
//	@Summary	Accept the simulated location offer
//	@Tags		map
//	@Produce	json
//	@Param		X-Session-ID	header		string	true	"Browser session id"
//	@Success	200				{object}	response.LocationResponse
//	@Failure	404				{object}	httputil.ErrorResponse
//	@Failure	409				{object}	httputil.ErrorResponse	"Mock location disabled"
//	@Router		/map/mock-location/accept [post]
func (h *MapHandler) AcceptMockLocation(c *gin.Context) {
	session := httputil.GetSession(c)

	loc, err := h.locatingSvc.AcceptMockLocation(c.Request.Context(), session.ID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.LocationFromValue(loc))
}

// DeclineMockLocation godoc
//
//	@Summary	Decline the simulated location offer
//	@Tags		map
//	@Param		X-Session-ID	header	string	true	"Browser session id"
//	@Success	204
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/map/mock-location/decline [post]
func (h *MapHandler) DeclineMockLocation(c *gin.Context) {
	session := httputil.GetSession(c)

	if err := h.locatingSvc.DeclineMockLocation(c.Request.Context(), session.ID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
