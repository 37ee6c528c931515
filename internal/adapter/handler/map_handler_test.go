package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/relief-map-backend/internal/mocks"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/locating"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session())
	return r
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(middleware.SessionHeader, "session-1")
	req.Header.Set(middleware.ProfileHeader, "profile-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMapHandler_Mount(t *testing.T) {
	t.Run("returns the initial state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/session", h.Mount)

		svc.EXPECT().Mount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in locating.MountInput) (locating.State, error) {
				assert.Equal(t, "session-1", in.Session.ID)
				assert.Equal(t, "profile-1", in.Session.ProfileID)
				assert.NotEmpty(t, in.ClientIP)
				return locating.State{Phase: locating.PhaseAcquiringReal, Prompt: locating.PromptUnknown, Loading: true}, nil
			})

		w := doRequest(router, http.MethodPost, "/map/session", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "session-1", w.Header().Get(middleware.SessionHeader))
		resp := decode(t, w)
		assert.Equal(t, "session-1", resp["session_id"])
		assert.Equal(t, "acquiring_real", resp["phase"])
		assert.Equal(t, true, resp["loading"])
		assert.Nil(t, resp["location"])
		assert.Equal(t, false, resp["show_mock_prompt"])
	})

	t.Run("mints a session id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/session", h.Mount)

		svc.EXPECT().Mount(gomock.Any(), gomock.Any()).Return(locating.State{Phase: locating.PhaseAcquiringReal}, nil)

		req := httptest.NewRequest(http.MethodPost, "/map/session", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		minted := w.Header().Get(middleware.SessionHeader)
		assert.NotEmpty(t, minted)
		assert.Equal(t, minted, decode(t, w)["session_id"])
	})
}

func TestMapHandler_Location(t *testing.T) {
	t.Run("returns mock state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.GET("/map/location", h.Location)

		loc := valueobject.NewLocation(10.7769, 106.7009, "Nguyễn Huệ Walking Street", "District 1")
		current := loc.Coordinate()
		svc.EXPECT().State(gomock.Any(), "session-1").Return(locating.State{
			Phase:        locating.PhaseMockActive,
			Prompt:       locating.PromptAccepted,
			Current:      &current,
			MockLocation: &loc,
			UsingMock:    true,
			LastUpdate:   time.Now(),
		}, nil)

		w := doRequest(router, http.MethodGet, "/map/location", "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, true, resp["is_using_mock_location"])
		location := resp["location"].(map[string]any)
		assert.Equal(t, 10.7769, location["lat"])
		assert.Equal(t, 106.7009, location["lng"])
		mock := resp["mock_location"].(map[string]any)
		assert.Equal(t, "District 1", mock["district"])
		assert.NotNil(t, resp["last_update"])
	})

	t.Run("shows prompt when eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.GET("/map/location", h.Location)

		svc.EXPECT().State(gomock.Any(), "session-1").Return(locating.State{
			Phase:  locating.PhaseFallback,
			Prompt: locating.PromptEligible,
		}, nil)

		w := doRequest(router, http.MethodGet, "/map/location", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(t, w)["show_mock_prompt"])
	})

	t.Run("returns 404 for unmounted session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.GET("/map/location", h.Location)

		svc.EXPECT().State(gomock.Any(), "session-1").Return(locating.State{}, domain.ErrSessionNotFound)

		w := doRequest(router, http.MethodGet, "/map/location", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "SESSION_NOT_FOUND", decode(t, w)["code"])
	})

	t.Run("hides internal errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.GET("/map/location", h.Location)

		svc.EXPECT().State(gomock.Any(), "session-1").Return(locating.State{}, errors.New("redis: connection refused"))

		w := doRequest(router, http.MethodGet, "/map/location", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "redis")
	})
}

func TestMapHandler_Unmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLocatingService(ctrl)
	h := handler.NewMapHandler(svc)
	router := setupRouter()
	router.DELETE("/map/session", h.Unmount)

	svc.EXPECT().Unmount(gomock.Any(), "session-1").Return(nil)

	w := doRequest(router, http.MethodDelete, "/map/session", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMapHandler_ReportPosition(t *testing.T) {
	t.Run("relays a fix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/positions", h.ReportPosition)

		svc.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, r locating.PositionReport) error {
				assert.Equal(t, "session-1", r.SessionID)
				require.NotNil(t, r.Position)
				assert.Equal(t, 10.77, r.Position.Lat)
				assert.Equal(t, 106.69, r.Position.Lng)
				require.NotNil(t, r.Position.Accuracy)
				assert.Equal(t, 12.5, *r.Position.Accuracy)
				assert.False(t, r.Position.Timestamp.IsZero())
				return nil
			})

		w := doRequest(router, http.MethodPost, "/map/positions", `{"latitude":10.77,"longitude":106.69,"accuracy":12.5}`)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("relays an error code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/positions", h.ReportPosition)

		svc.EXPECT().ReportPosition(gomock.Any(), locating.PositionReport{SessionID: "session-1", ErrorCode: 1}).Return(nil)

		w := doRequest(router, http.MethodPost, "/map/positions", `{"error_code":1}`)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("rejects empty report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewMapHandler(mocks.NewMockLocatingService(ctrl))
		router := setupRouter()
		router.POST("/map/positions", h.ReportPosition)

		w := doRequest(router, http.MethodPost, "/map/positions", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w)["code"])
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewMapHandler(mocks.NewMockLocatingService(ctrl))
		router := setupRouter()
		router.POST("/map/positions", h.ReportPosition)

		for _, body := range []string{
			`{"latitude":91,"longitude":106}`,
			`{"latitude":10,"longitude":181}`,
			`{"error_code":4}`,
		} {
			w := doRequest(router, http.MethodPost, "/map/positions", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})
}

func TestMapHandler_AcceptMockLocation(t *testing.T) {
	t.Run("returns the new mock location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/mock-location/accept", h.AcceptMockLocation)

		loc := valueobject.NewLocation(10.7626, 106.6602, "Chợ Lớn", "District 5")
		svc.EXPECT().AcceptMockLocation(gomock.Any(), "session-1").Return(loc, nil)

		w := doRequest(router, http.MethodPost, "/map/mock-location/accept", "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "Chợ Lớn", resp["address"])
		assert.Equal(t, 10.7626, resp["latitude"])
	})

	t.Run("returns 409 when disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/mock-location/accept", h.AcceptMockLocation)

		svc.EXPECT().AcceptMockLocation(gomock.Any(), "session-1").Return(valueobject.Location{}, domain.ErrMockLocationDisabled)

		w := doRequest(router, http.MethodPost, "/map/mock-location/accept", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("returns 410 for closed session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mocks.NewMockLocatingService(ctrl)
		h := handler.NewMapHandler(svc)
		router := setupRouter()
		router.POST("/map/mock-location/accept", h.AcceptMockLocation)

		svc.EXPECT().AcceptMockLocation(gomock.Any(), "session-1").Return(valueobject.Location{}, domain.ErrSessionClosed)

		w := doRequest(router, http.MethodPost, "/map/mock-location/accept", "")
		assert.Equal(t, http.StatusGone, w.Code)
	})
}

func TestMapHandler_DeclineMockLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLocatingService(ctrl)
	h := handler.NewMapHandler(svc)
	router := setupRouter()
	router.POST("/map/mock-location/decline", h.DeclineMockLocation)

	svc.EXPECT().DeclineMockLocation(gomock.Any(), "session-1").Return(nil)

	w := doRequest(router, http.MethodPost, "/map/mock-location/decline", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
