package api

import (
	"errors"
	"net/http"
	"time"

	"tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/pkg/civil"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffHandler serves the authenticated back office: the day board and the
// lifecycle transitions.
type StaffHandler struct {
	reservations queries.ReservationQueries
	workflow     commands.WorkflowCommands
}

func NewStaffHandler(reservations queries.ReservationQueries, workflow commands.WorkflowCommands) *StaffHandler {
	return &StaffHandler{
		reservations: reservations,
		workflow:     workflow,
	}
}

// @Summary Reservations for a date
// @Description List all reservations on the given service date
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationListItemResponse
// @Failure 400 {object} map[string]string
// @Router /staff/reservations [get]
func (h *StaffHandler) ListReservations(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse(civil.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}

	items, err := h.reservations.ListOnDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.ToReservationListResponse(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reservation detail
// @Description Fetch one reservation with its order lines
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/reservations/{id} [get]
func (h *StaffHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	view, err := h.reservations.GetByID(c.Request.Context(), id)
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

	resp, err := resdto.ToReservationResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Transition reservation status
// @Description Move a reservation along its channel's lifecycle
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff/reservations/{id}/status [patch]
func (h *StaffHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	var req reqdto.TransitionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	to := reservation.Status(req.Status)
	if !to.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown status",
		})
		return
	}

	view, err := h.workflow.Transition(c.Request.Context(), id, to)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrTransitionNotAllowed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status transition not allowed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.ToReservationResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
