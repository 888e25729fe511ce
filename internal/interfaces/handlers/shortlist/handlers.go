package shortlist

import (
	"errors"

	favsvc "designer-shortlist/internal/application/favorites"
	"designer-shortlist/internal/domain"
	"designer-shortlist/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *favsvc.Service
}

type manageRequest struct {
	DesignerID *int64                 `json:"designer_id"`
	Action     domain.ShortlistAction `json:"action"`
	UserID     string                 `json:"user_id"`
}

// POST /api/shortlist: { success, message, designer_id, user_id, shortlisted_count }
func (h *Handlers) Manage(c *fiber.Ctx) error {
	var req manageRequest
	if err := c.BodyParser(&req); err != nil || req.DesignerID == nil {
		return response.Error(c, fiber.StatusBadRequest, "Designer ID is required")
	}
	if req.Action == "" {
		req.Action = domain.ActionAdd
	}
	if req.UserID == "" {
		req.UserID = domain.DefaultUserID
	}

	res, err := h.Service.Manage(c.Context(), *req.DesignerID, req.Action, req.UserID)
	switch {
	case errors.Is(err, favsvc.ErrDesignerNotFound):
		return response.Error(c, fiber.StatusNotFound, "Designer not found")
	case errors.Is(err, favsvc.ErrInvalidAction):
		return response.Error(c, fiber.StatusBadRequest, "Invalid action. Use 'add' or 'remove'")
	case err != nil:
		return err
	}
	return response.Message(c, res.Message, fiber.Map{
		"designer_id":       res.DesignerID,
		"user_id":           res.UserID,
		"shortlisted_count": res.ShortlistedCount,
	})
}

// GET /api/shortlist/:user_id: { success, data, count, user_id }
func (h *Handlers) List(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	ds, err := h.Service.List(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.Data(c, ds, fiber.Map{"count": len(ds), "user_id": userID})
}
