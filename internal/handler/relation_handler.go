package handler

import (
	"net/http"

	"educonnect/backend/internal/auth"
	"educonnect/backend/internal/models"
	"educonnect/backend/internal/registry"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// FriendshipCheckResponse reports whether two identities are friends.
type FriendshipCheckResponse struct {
	A       string `json:"a" example:"0xAlice"`
	B       string `json:"b" example:"0xBob"`
	Friends bool   `json:"friends" example:"true"`
}

// endregion

// SendRequest godoc
// @Summary      Send a friend request
// @Description  Sends a friend request from the caller to the identity in the path. Both must have a profile.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        identity  path      string  true  "Recipient identity"
// @Success      200       {object}  MessageResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse
// @Failure      429       {object}  ErrorResponse
// @Router       /profiles/{identity}/request [post]
func (h *Handler) SendRequest(c *gin.Context) {
	err := h.reg.SendFriendRequest(c.Request.Context(), auth.Identity(c), c.Param("identity"))
	if err != nil {
		respondError(c, err, "Failed to send friend request")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Friend request sent"})
}

// AcceptRequest godoc
// @Summary      Accept a friend request
// @Description  Accepts the pending request the identity in the path sent to the caller. Accepting an existing friendship again succeeds without changes.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        identity  path      string  true  "Requester identity"
// @Success      200       {object}  MessageResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      429       {object}  ErrorResponse
// @Router       /profiles/{identity}/accept [post]
func (h *Handler) AcceptRequest(c *gin.Context) {
	err := h.reg.AcceptFriendRequest(c.Request.Context(), auth.Identity(c), c.Param("identity"))
	if err != nil {
		respondError(c, err, "Failed to accept friend request")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Friend request accepted"})
}

// CheckFriendship godoc
// @Summary      Check whether two identities are friends
// @Tags         friendship
// @Produce      json
// @Param        identity  path      string  true  "First identity"
// @Param        other     path      string  true  "Second identity"
// @Success      200       {object}  FriendshipCheckResponse
// @Router       /profiles/{identity}/friendship/{other} [get]
func (h *Handler) CheckFriendship(c *gin.Context) {
	a, b := c.Param("identity"), c.Param("other")

	friends, err := h.reg.CheckFriendship(c.Request.Context(), a, b)
	if err != nil {
		respondError(c, err, "Failed to check friendship")
		return
	}
	c.JSON(http.StatusOK, FriendshipCheckResponse{A: a, B: b, Friends: friends})
}

// GetRelations godoc
// @Summary      Get an identity's relations
// @Description  Lists the friendship edges touching an identity, filtered by status and direction.
// @Tags         friendship
// @Produce      json
// @Param        identity  path      string  true   "Identity"
// @Param        status    query     string  false  "Filter by status (pending, accepted)"
// @Param        direction query     string  false  "Filter by direction (incoming, outgoing)"
// @Success      200       {array}   models.Friendship
// @Failure      400       {object}  ErrorResponse
// @Router       /profiles/{identity}/relations [get]
func (h *Handler) GetRelations(c *gin.Context) {
	var filter registry.RelationFilter

	switch status := models.FriendshipStatus(c.Query("status")); status {
	case "", models.StatusPending, models.StatusAccepted:
		filter.Status = status
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'status' query parameter (pending or accepted)"})
		return
	}

	switch direction := registry.Direction(c.Query("direction")); direction {
	case "", registry.DirectionIncoming, registry.DirectionOutgoing:
		filter.Direction = direction
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'direction' query parameter (incoming or outgoing)"})
		return
	}

	relations, err := h.reg.ListRelations(c.Request.Context(), c.Param("identity"), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch relations")
		return
	}
	c.JSON(http.StatusOK, relations)
}
