package handler

import (
	"net/http"

	"educonnect/backend/internal/auth"
	"educonnect/backend/internal/models"
	"educonnect/backend/internal/registry"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CreateProfileInput defines the structure for registering a profile.
type CreateProfileInput struct {
	FullName           string   `json:"full_name" binding:"required" example:"Ada Lovelace"`
	IPFSProfilePicture string   `json:"ipfs_profile_picture" example:"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"`
	Title              string   `json:"title" example:"Student"`
	TechStack          []string `json:"tech_stack" example:"go,solidity"`
	About              string   `json:"about" example:"Likes analytical engines"`
}

// ProfileResponse is a profile as seen by the viewer. RelationStatus and
// RequestedBy are set when the viewer is authenticated and has an edge with
// the profile owner.
type ProfileResponse struct {
	models.Profile
	RelationStatus *models.FriendshipStatus `json:"relation_status,omitempty"`
	RequestedBy    string                   `json:"requested_by,omitempty"`
}

// endregion

// CreateProfile godoc
// @Summary      Create the caller's profile
// @Description  Registers a profile for the authenticated identity. Each identity can do this once.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      CreateProfileInput  true  "Profile fields"
// @Success      201    {object}  models.Profile
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse
// @Router       /profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var input CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.reg.CreateProfile(c.Request.Context(), auth.Identity(c), registry.ProfileInput{
		FullName:           input.FullName,
		IPFSProfilePicture: input.IPFSProfilePicture,
		Title:              input.Title,
		TechStack:          input.TechStack,
		About:              input.About,
	})
	if err != nil {
		respondError(c, err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetMe godoc
// @Summary      Get the caller's profile
// @Description  Returns the authenticated identity's profile, or an empty profile if none exists.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  ErrorResponse
// @Router       /profiles/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	profile, err := h.reg.GetProfile(c.Request.Context(), auth.Identity(c))
	if err != nil {
		respondError(c, err, "Failed to fetch profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile godoc
// @Summary      Get a profile
// @Description  Returns the profile of an identity, or an empty profile if none exists. Authenticated viewers also get their relation to the owner.
// @Tags         profiles
// @Produce      json
// @Param        identity  path      string  true  "Owner identity"
// @Success      200       {object}  ProfileResponse
// @Router       /profiles/{identity} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	identity := c.Param("identity")

	profile, err := h.reg.GetProfile(ctx, identity)
	if err != nil {
		respondError(c, err, "Failed to fetch profile")
		return
	}

	response := ProfileResponse{Profile: profile}

	viewer := auth.Identity(c)
	if viewer != "" && viewer != identity && profile.Exists() {
		edge, err := h.reg.Relation(ctx, viewer, identity)
		if err != nil {
			respondError(c, err, "Failed to fetch relation")
			return
		}
		if edge != nil {
			status := edge.Status
			response.RelationStatus = &status
			response.RequestedBy = edge.RequesterID
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetFriendCount godoc
// @Summary      Get an identity's friend count
// @Description  Returns the number of confirmed friendships. Unknown identities have zero.
// @Tags         friendship
// @Produce      json
// @Param        identity  path      string  true  "Identity"
// @Success      200       {object}  CountResponse
// @Router       /profiles/{identity}/friends/count [get]
func (h *Handler) GetFriendCount(c *gin.Context) {
	count, err := h.reg.GetFriendCount(c.Request.Context(), c.Param("identity"))
	if err != nil {
		respondError(c, err, "Failed to fetch friend count")
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}
