package designers

import (
	"errors"
	"strconv"
	"strings"

	designersvc "designer-shortlist/internal/application/designers"
	"designer-shortlist/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *designersvc.Service
}

// GET /api/designers: { success, data, count, filters_applied }
func (h *Handlers) List(c *fiber.Ctx) error {
	f := designersvc.ListFilter{
		Search:    strings.ToLower(c.Query("search")),
		Location:  strings.ToLower(c.Query("location")),
		Tag:       strings.ToLower(c.Query("tag")),
		MinRating: queryFloat(c, "min_rating"),
		MaxPrice:  queryInt(c, "max_price"),
		SortBy:    c.Query("sort_by", designersvc.SortByName),
		SortOrder: c.Query("sort_order", "asc"),
	}
	ds, err := h.Service.List(c.Context(), f)
	if err != nil {
		return err
	}
	return response.Data(c, ds, fiber.Map{
		"count": len(ds),
		"filters_applied": fiber.Map{
			"search":     nullable(f.Search),
			"location":   nullable(f.Location),
			"tag":        nullable(f.Tag),
			"min_rating": f.MinRating,
			"max_price":  f.MaxPrice,
			"sort_by":    f.SortBy,
			"sort_order": f.SortOrder,
		},
	})
}

// GET /api/designers/:id: 404 when the designer is unknown or inactive
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.NotFound(c)
	}
	d, err := h.Service.GetByID(c.Context(), id)
	if errors.Is(err, designersvc.ErrNotFound) {
		return response.Error(c, fiber.StatusNotFound, "Designer not found")
	}
	if err != nil {
		return err
	}
	return response.Data(c, d, nil)
}

// POST /api/designers/search: { success, data, count, search_criteria }
func (h *Handlers) Search(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil || len(raw) == 0 {
		return response.Error(c, fiber.StatusBadRequest, "No search criteria provided")
	}
	var criteria designersvc.SearchCriteria
	if err := c.BodyParser(&criteria); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid search criteria")
	}
	ds, err := h.Service.Search(c.Context(), criteria)
	if err != nil {
		return err
	}
	return response.Data(c, ds, fiber.Map{"count": len(ds), "search_criteria": raw})
}

// GET /api/stats
func (h *Handlers) Stats(c *fiber.Ctx) error {
	st, err := h.Service.Stats(c.Context())
	if err != nil {
		return err
	}
	return response.Data(c, st, nil)
}

// GET /api/tags
func (h *Handlers) Tags(c *fiber.Ctx) error {
	tags, err := h.Service.Tags(c.Context())
	if err != nil {
		return err
	}
	return response.Data(c, tags, nil)
}

// GET /api/locations
func (h *Handlers) Locations(c *fiber.Ctx) error {
	locs, err := h.Service.Locations(c.Context())
	if err != nil {
		return err
	}
	return response.Data(c, locs, nil)
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *fiber.Ctx, key string) *int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return nil
	}
	return &v
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
