package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h fiber.Handler) (int, map[string]interface{}) {
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestData(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return Data(c, []int{1, 2}, fiber.Map{"count": 2})
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{float64(1), float64(2)}, body["data"])
	assert.Equal(t, float64(2), body["count"])
}

func TestMessage(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return Message(c, "done", nil)
	})
	assert.Equal(t, 200, code)
	assert.Equal(t, "done", body["message"])
}

func TestErrorAndNotFound(t *testing.T) {
	code, body := call(t, func(c *fiber.Ctx) error {
		return Error(c, 400, "Designer ID is required")
	})
	assert.Equal(t, 400, code)
	assert.Equal(t, map[string]interface{}{"success": false, "error": "Designer ID is required"}, body)

	code, body = call(t, NotFound)
	assert.Equal(t, 404, code)
	assert.Equal(t, "Endpoint not found", body["error"])
}
