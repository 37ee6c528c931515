package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/mocklocation"
)

// CatalogHandler serves the fixed seed locations and the region check.
type CatalogHandler struct {
	region valueobject.BoundingBox
}

func NewCatalogHandler(region valueobject.BoundingBox) *CatalogHandler {
	return &CatalogHandler{region: region}
}

// List godoc
//
//	@Summary	List catalog locations
//	@Tags		locations
//	@Produce	json
//	@Param		page		query		int	false	"Page number"
//	@Param		per_page	query		int	false	"Items per page"
//	@Success	200			{object}	response.LocationListResponse
//	@Router		/locations [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var req request.ListLocationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	params := pagination.NewParams(req.Page, req.PerPage)
	all := mocklocation.Catalog()

	start, end := params.Window(len(all))

	data := make([]response.LocationResponse, 0, end-start)
	for _, loc := range all[start:end] {
		data = append(data, response.LocationFromValue(loc))
	}

	httputil.OK(c, response.LocationListResponse{
		Data:       data,
		Pagination: pagination.NewInfo(params, len(all)),
	})
}

// Contains godoc
//
//	@Summary		Check a point against the service region
//	@Description	Coarse, edge-inclusive bounding box test. True means plausible, not certain.
//	@Tags			locations
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude"
//	@Param			lng	query		number	true	"Longitude"
//	@Success		200	{object}	response.RegionContainsResponse
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Router			/region/contains [get]
func (h *CatalogHandler) Contains(c *gin.Context) {
	var req request.RegionContainsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	lat, lng := *req.Latitude, *req.Longitude
	httputil.OK(c, response.RegionContainsResponse{
		Latitude:  lat,
		Longitude: lng,
		Within:    h.region.Contains(lat, lng),
	})
}
