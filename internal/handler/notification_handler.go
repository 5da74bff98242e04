package handler

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"educonnect/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

const (
	clientBufferSize  = 16
	keepAliveInterval = 25 * time.Second
)

// GetNotifications godoc
// @Summary      Read the notification log
// @Description  Returns notifications with an ID greater than 'after', oldest first.
// @Tags         notifications
// @Produce      json
// @Param        after  query     int  false  "Last notification ID already seen"
// @Success      200    {array}   models.Notification
// @Failure      400    {object}  ErrorResponse
// @Router       /notifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	var after uint64
	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'after' query parameter"})
			return
		}
		after = parsed
	}

	notifications, err := h.reg.NotificationsSince(c.Request.Context(), uint(after))
	if err != nil {
		respondError(c, err, "Failed to fetch notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// StreamNotifications godoc
// @Summary      Stream notifications
// @Description  Server-sent events for every committed notification, or only those involving 'identity'.
// @Tags         notifications
// @Produce      text/event-stream
// @Param        identity  query  string  false  "Only notifications involving this identity"
// @Success      200
// @Router       /notifications/stream [get]
func (h *Handler) StreamNotifications(c *gin.Context) {
	topic := c.Query("identity")

	client := make(hub.Client, clientBufferSize)
	h.hub.Subscribe(topic, client)
	defer h.hub.Unsubscribe(topic, client)

	log.Printf("[SSE] Client subscribed to %q", topic)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-ticker.C:
			c.SSEvent("ping", "")
			return true
		}
	})

	log.Printf("[SSE] Client unsubscribed from %q", topic)
}

// GetState godoc
// @Summary      Dump all registry state
// @Description  Returns every profile, friendship, event and notification in a stable order.
// @Tags         state
// @Produce      json
// @Success      200  {object}  registry.State
// @Router       /state [get]
func (h *Handler) GetState(c *gin.Context) {
	state, err := h.reg.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read state")
		return
	}
	c.JSON(http.StatusOK, state)
}
