package handlers

import (
	"net/http"

	"vacation-manager-backend/internal/auth"
	"vacation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HolidayHandler handles HTTP requests for holiday request operations. Every
// mutating endpoint acts on behalf of the authenticated user; the service
// layer decides whether that user has the authority.
type HolidayHandler struct {
	holidayService service.HolidayServiceInterface
}

// NewHolidayHandler creates a new holiday handler
func NewHolidayHandler(holidayService service.HolidayServiceInterface) *HolidayHandler {
	return &HolidayHandler{
		holidayService: holidayService,
	}
}

// CreateHoliday handles POST /holidays
// @Summary File a holiday request
// @Description File a leave request for the authenticated user; it starts pending
// @Tags holidays
// @Accept json
// @Produce json
// @Param holiday body service.CreateHolidayRequest true "Requested dates"
// @Success 201 {object} service.HolidayResponse "Successfully filed request"
// @Failure 400 {object} ErrorResponse "Invalid request body or date range"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /holidays [post]
func (h *HolidayHandler) CreateHoliday(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Create(actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// GetHoliday handles GET /holidays/:id
// @Summary Get a holiday request
// @Description Get a single holiday request with its requester
// @Tags holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday request ID (UUID)"
// @Success 200 {object} service.HolidayResponse "Successfully retrieved request"
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /holidays/{id} [get]
func (h *HolidayHandler) GetHoliday(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday request ID"})
		return
	}

	holiday, err := h.holidayService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holiday)
}

// ListMyHolidays handles GET /holidays
// @Summary List own holiday requests
// @Description Get every request filed by the authenticated user
// @Tags holidays
// @Accept json
// @Produce json
// @Success 200 {array} service.HolidayResponse "Successfully retrieved requests"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /holidays [get]
func (h *HolidayHandler) ListMyHolidays(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	holidays, err := h.holidayService.ListByRequester(actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// ListPendingHolidays handles GET /holidays/pending
// @Summary List the pending approval queue
// @Description The CEO sees all pending requests; a team lead sees pending requests from ordinary members of the team they lead
// @Tags holidays
// @Accept json
// @Produce json
// @Success 200 {array} service.HolidayResponse "Successfully retrieved pending requests"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No approval authority"
// @Security BearerAuth
// @Router /holidays/pending [get]
func (h *HolidayHandler) ListPendingHolidays(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	holidays, err := h.holidayService.ListPending(actorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// UpdateHoliday handles PUT /holidays/:id
// @Summary Edit a pending holiday request
// @Description Edit the dates of a pending request; only the requester may edit
// @Tags holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday request ID (UUID)"
// @Param holiday body service.UpdateHolidayRequest true "Updated dates"
// @Success 200 {object} service.HolidayResponse "Successfully updated request"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the requester"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already approved or modified concurrently"
// @Security BearerAuth
// @Router /holidays/{id} [put]
func (h *HolidayHandler) UpdateHoliday(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday request ID"})
		return
	}

	var req service.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holiday, err := h.holidayService.Update(id, actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, holiday)
}

// ApproveHoliday handles POST /holidays/:id/approve
// @Summary Approve a pending holiday request
// @Description Approve a request; allowed for the CEO or the lead of the requester's team, never for the requester themselves
// @Tags holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday request ID (UUID)"
// @Success 204 "Successfully approved request"
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 403 {object} ErrorResponse "No approval authority"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already approved or modified concurrently"
// @Security BearerAuth
// @Router /holidays/{id}/approve [post]
func (h *HolidayHandler) ApproveHoliday(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday request ID"})
		return
	}

	if err := h.holidayService.Approve(id, actorID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteHoliday handles DELETE /holidays/:id
// @Summary Delete a pending holiday request
// @Description Delete a pending request; allowed for the requester, the CEO, or the lead of the requester's team
// @Tags holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday request ID (UUID)"
// @Success 204 "Successfully deleted request"
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 403 {object} ErrorResponse "No deletion authority"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already approved"
// @Security BearerAuth
// @Router /holidays/{id} [delete]
func (h *HolidayHandler) DeleteHoliday(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid holiday request ID"})
		return
	}

	if err := h.holidayService.Delete(id, actorID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
