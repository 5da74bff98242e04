package handler

import (
	"net/http"
	"strconv"
	"time"

	"educonnect/backend/internal/auth"
	"educonnect/backend/internal/registry"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CreateEventInput defines the structure for publishing an event.
type CreateEventInput struct {
	Name        string    `json:"name" example:"Campus Hack Night"`
	Description string    `json:"description" example:"Bring a laptop"`
	Date        time.Time `json:"date" example:"2026-11-20T18:00:00Z"`
	IsHackathon bool      `json:"is_hackathon" example:"true"`
}

// endregion

// CreateEvent godoc
// @Summary      Publish an event
// @Description  Appends an event organized by the caller to the event log.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      CreateEventInput  true  "Event fields"
// @Success      201    {object}  models.Event
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      403    {object}  ErrorResponse
// @Failure      429    {object}  ErrorResponse
// @Router       /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	event, err := h.reg.CreateEvent(c.Request.Context(), auth.Identity(c), registry.EventInput{
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		IsHackathon: input.IsHackathon,
	})
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvents godoc
// @Summary      List all events
// @Description  Returns the whole event log in sequence order.
// @Tags         events
// @Produce      json
// @Success      200  {array}  models.Event
// @Router       /events [get]
func (h *Handler) GetEvents(c *gin.Context) {
	events, err := h.reg.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventCount godoc
// @Summary      Count events
// @Tags         events
// @Produce      json
// @Success      200  {object}  CountResponse
// @Router       /events/count [get]
func (h *Handler) GetEventCount(c *gin.Context) {
	count, err := h.reg.GetEventCount(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to count events")
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetEventByIndex godoc
// @Summary      Get an event by sequence number
// @Tags         events
// @Produce      json
// @Param        index  path      int  true  "Zero-based sequence number"
// @Success      200    {object}  models.Event
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /events/{index} [get]
func (h *Handler) GetEventByIndex(c *gin.Context) {
	index, err := strconv.ParseUint(c.Param("index"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event index"})
		return
	}

	event, err := h.reg.EventAt(c.Request.Context(), index)
	if err != nil {
		respondError(c, err, "Failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, event)
}
