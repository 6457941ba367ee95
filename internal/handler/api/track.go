package api

import (
	"errors"
	"net/http"

	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrackHandler serves the anonymous tracking page a reservation's token
// resolves to.
type TrackHandler struct {
	tracking queries.TrackingQueries
	blobs    queries.BlobReadStore
}

func NewTrackHandler(tracking queries.TrackingQueries, blobs queries.BlobReadStore) *TrackHandler {
	return &TrackHandler{
		tracking: tracking,
		blobs:    blobs,
	}
}

// @Summary Track a reservation
// @Description Resolve a tracking token into progress for the status page
// @Tags track
// @Produce json
// @Param token path string true "Tracking token"
// @Success 200 {object} resdto.TrackingResponse
// @Failure 404 {object} map[string]string
// @Router /track/{token} [get]
func (h *TrackHandler) Track(c *gin.Context) {
	view, err := h.tracking.TrackByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.ToTrackingResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Export payment proof
// @Description Download the proof-of-payment file once staff have confirmed
// @Tags track
// @Produce octet-stream
// @Param token path string true "Tracking token"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /track/{token}/proof [get]
func (h *TrackHandler) ExportProof(c *gin.Context) {
	view, err := h.tracking.TrackByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if !view.CanExportProof {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Proof export is not available yet",
		})
		return
	}
	if view.Reservation.ProofRef == uuid.Nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No proof on file",
		})
		return
	}

	blob, err := h.blobs.FindByID(c.Request.Context(), view.Reservation.ProofRef)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No proof on file",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+blob.Name+`"`)
	c.Data(http.StatusOK, blob.ContentType, blob.Content)
}
