//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/httptest"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockTracking *queriesmock.MockTrackingQueries
	mockBlobs    *queriesmock.MockBlobReadStore
	handler      *api.TrackHandler
}

func (s *TrackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracking = queriesmock.NewMockTrackingQueries(s.mockCtrl)
	s.mockBlobs = queriesmock.NewMockBlobReadStore(s.mockCtrl)
	s.handler = api.NewTrackHandler(s.mockTracking, s.mockBlobs)

	s.router.GET("/track/:token", s.handler.Track)
	s.router.GET("/track/:token/proof", s.handler.ExportProof)
}

func (s *TrackHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackHandlerSuite(t *testing.T) {
	suite.Run(t, new(TrackHandlerTestSuite))
}

func trackingView(status reservation.Status, proofRef uuid.UUID) *queries.TrackingView {
	view := sampleView(uuid.New(), status)
	view.ProofRef = proofRef
	return &queries.TrackingView{
		Reservation:    view,
		Ordinal:        reservation.Ordinal(reservation.ChannelDineIn, status),
		PipelineLength: 4,
		IsActive:       reservation.IsActive(status),
		IsTerminal:     reservation.IsTerminal(status),
		CanExportProof: reservation.CanExportProof(status),
		PollSeconds:    15,
	}
}

func (s *TrackHandlerTestSuite) TestTrack() {
	s.Run("success: resolves a token to progress", func() {
		s.mockTracking.EXPECT().TrackByToken(gomock.Any(), "trk-token").
			Return(trackingView(reservation.StatusConfirmed, uuid.Nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/track/trk-token", nil, "")

		var response resdto.TrackingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Ordinal)
		s.True(response.IsActive)
		s.Equal(15, response.PollSeconds)
	})

	s.Run("error: 404 for an unknown token", func() {
		s.mockTracking.EXPECT().TrackByToken(gomock.Any(), "missing").
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/track/missing", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TrackHandlerTestSuite) TestExportProof() {
	proofRef := uuid.New()

	s.Run("success: streams the stored file", func() {
		s.mockTracking.EXPECT().TrackByToken(gomock.Any(), "trk-token").
			Return(trackingView(reservation.StatusConfirmed, proofRef), nil).Times(1)
		s.mockBlobs.EXPECT().FindByID(gomock.Any(), proofRef).
			Return(&queries.BlobView{
				ID:          proofRef,
				Name:        "slip.jpg",
				ContentType: "image/jpeg",
				Content:     []byte{0xff, 0xd8},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/track/trk-token/proof", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("image/jpeg", rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), "slip.jpg")
		s.Equal([]byte{0xff, 0xd8}, rec.Body.Bytes())
	})

	s.Run("error: 403 while the reservation is still pending", func() {
		s.mockTracking.EXPECT().TrackByToken(gomock.Any(), "trk-token").
			Return(trackingView(reservation.StatusPending, proofRef), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/track/trk-token/proof", nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 when no proof was stored", func() {
		s.mockTracking.EXPECT().TrackByToken(gomock.Any(), "trk-token").
			Return(trackingView(reservation.StatusConfirmed, uuid.Nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/track/trk-token/proof", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
