package handler

import (
	"educonnect/backend/internal/hub"
	"educonnect/backend/internal/registry"
)

// Handler serves the HTTP API on top of the registry and the notification hub.
type Handler struct {
	reg *registry.Registry
	hub *hub.Hub
}

// New creates a Handler.
func New(reg *registry.Registry, h *hub.Hub) *Handler {
	return &Handler{reg: reg, hub: h}
}

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic success response.
type MessageResponse struct {
	Message string `json:"message" example:"Friend request sent"`
}

// CountResponse wraps a single counter.
type CountResponse struct {
	Count uint64 `json:"count" example:"3"`
}

// endregion
