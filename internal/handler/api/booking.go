package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"tablebook/internal/domain/draft"
	"tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/pkg/civil"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/flow"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler serves the anonymous customer flow: the wizard sessions,
// availability, the menu, and final submission.
type BookingHandler struct {
	flows        *flow.Store
	availability queries.AvailabilityQueries
	menu         queries.MenuReadStore
	cfg          config.RestaurantConfig
}

func NewBookingHandler(
	flows *flow.Store,
	availability queries.AvailabilityQueries,
	menu queries.MenuReadStore,
	cfg config.RestaurantConfig,
) *BookingHandler {
	return &BookingHandler{
		flows:        flows,
		availability: availability,
		menu:         menu,
		cfg:          cfg,
	}
}

// @Summary Start a booking session
// @Description Create a fresh wizard draft for the chosen channel
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.StartFlowRequest true "Channel"
// @Success 201 {object} resdto.StartFlowResponse
// @Failure 400 {object} map[string]string
// @Router /booking/sessions [post]
func (h *BookingHandler) StartSession(c *gin.Context) {
	var req reqdto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionID := uuid.New().String()
	ctrl := h.flows.Start(sessionID, reservation.Channel(req.Channel))

	c.JSON(http.StatusCreated, resdto.StartFlowResponse{
		SessionID: sessionID,
		Draft:     resdto.ToDraftResponse(ctrl.Snapshot()),
	})
}

// @Summary Current draft
// @Description Return the session's draft as it stands
// @Tags booking
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{session} [get]
func (h *BookingHandler) GetDraft(c *gin.Context) {
	ctrl, ok := h.flows.Get(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking session not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ToDraftResponse(ctrl.Snapshot()))
}

// @Summary Dispatch a wizard action
// @Description Apply one action to the session's draft and return the result
// @Tags booking
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param request body reqdto.ActionRequest true "Wizard action"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{session}/actions [post]
func (h *BookingHandler) DispatchAction(c *gin.Context) {
	ctrl, ok := h.flows.Get(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking session not found",
		})
		return
	}

	var req reqdto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	action, err := req.ToAction()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown or malformed action",
		})
		return
	}

	d := ctrl.Dispatch(c.Request.Context(), action)
	c.JSON(http.StatusOK, resdto.ToDraftResponse(d))
}

// @Summary Attach payment proof
// @Description Attach a proof-of-payment file to the draft
// @Tags booking
// @Accept multipart/form-data
// @Produce json
// @Param session path string true "Session ID"
// @Param file formData file true "Proof of payment"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /booking/sessions/{session}/proof [post]
func (h *BookingHandler) AttachProof(c *gin.Context) {
	ctrl, ok := h.flows.Get(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking session not found",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Proof file is required",
		})
		return
	}
	if fileHeader.Size > h.cfg.ProofMaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "Proof file exceeds the size limit",
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Proof file could not be read",
		})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Proof file could not be read",
		})
		return
	}

	d := ctrl.Dispatch(c.Request.Context(), draft.AttachProof{Proof: draft.ProofFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	}})
	c.JSON(http.StatusOK, resdto.ToDraftResponse(d))
}

// @Summary Apply a promotion code
// @Description Validate a code against the current cart; rejection is data
// @Tags booking
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param request body reqdto.ApplyPromotionRequest true "Promotion code"
// @Success 200 {object} resdto.ApplyPromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /booking/sessions/{session}/promotion [post]
func (h *BookingHandler) ApplyPromotion(c *gin.Context) {
	ctrl, ok := h.flows.Get(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking session not found",
		})
		return
	}

	var req reqdto.ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := ctrl.ApplyCode(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Promotion check is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ToApplyPromotionResponse(result, ctrl.Snapshot()))
}

// @Summary Submit the booking
// @Description Run the commit protocol over the session's draft
// @Tags booking
// @Produce json
// @Param session path string true "Session ID"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/sessions/{session}/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	ctrl, ok := h.flows.Get(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking session not found",
		})
		return
	}

	view, err := ctrl.Submit(c.Request.Context())
	if err != nil {
		status, msg := submitErrorStatus(err)
		// The draft may have been walked back to a repairable step; send it
		// along so the client can re-render without a second round trip.
		c.JSON(status, gin.H{
			"error": msg,
			"draft": resdto.ToDraftResponse(ctrl.Snapshot()),
		})
		return
	}

	resp, err := resdto.ToReservationResponse(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func submitErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, flow.ErrSubmitInFlight):
		return http.StatusConflict, "A submit is already in progress"
	case errors.Is(err, commands.ErrInvalidSchedule):
		return http.StatusBadRequest, "Invalid reservation schedule"
	case errors.Is(err, commands.ErrMissingContact):
		return http.StatusUnprocessableEntity, "Contact name and phone are required"
	case errors.Is(err, commands.ErrTermsNotAgreed):
		return http.StatusUnprocessableEntity, "Terms must be agreed before submitting"
	case errors.Is(err, commands.ErrMissingProof):
		return http.StatusUnprocessableEntity, "Payment proof is required"
	case errors.Is(err, commands.ErrProofTooLarge):
		return http.StatusRequestEntityTooLarge, "Payment proof exceeds the size limit"
	case errors.Is(err, commands.ErrDateBlocked):
		return http.StatusUnprocessableEntity, "Bookings are closed on that date"
	case errors.Is(err, commands.ErrBelowMinSpend):
		return http.StatusUnprocessableEntity, "Order is below the minimum spend"
	case errors.Is(err, commands.ErrTableTaken):
		return http.StatusConflict, "Table was taken while you were booking"
	case errors.Is(err, commands.ErrDomainValidation):
		return http.StatusUnprocessableEntity, "Domain validation failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// @Summary Free tables
// @Description List tables free for the requested window and party size
// @Tags booking
// @Produce json
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Param party_size query int false "Party size"
// @Success 200 {array} resdto.TableResponse
// @Failure 400 {object} map[string]string
// @Router /booking/availability [get]
func (h *BookingHandler) FreeTables(c *gin.Context) {
	date := c.Query("date")
	startTime := c.Query("time")
	partySize, _ := strconv.Atoi(c.Query("party_size"))

	tables, err := h.availability.FreeTables(c.Request.Context(), date, startTime, partySize)
	if err != nil {
		switch {
		case errors.Is(err, civil.ErrInvalidDate), errors.Is(err, civil.ErrInvalidTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date or time",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.ToTableListResponse(tables)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Menu
// @Description List available menu items with option groups
// @Tags booking
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Router /booking/menu [get]
func (h *BookingHandler) Menu(c *gin.Context) {
	items, err := h.menu.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.ToMenuListResponse(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
