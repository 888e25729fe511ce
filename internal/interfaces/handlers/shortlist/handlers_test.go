package shortlist

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	favsvc "designer-shortlist/internal/application/favorites"
	"designer-shortlist/internal/infrastructure/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupShortlistTest(t *testing.T) *fiber.App {
	db, err := database.Setup(context.Background(), "", ":memory:")
	require.NoError(t, err)
	h := &Handlers{Service: &favsvc.Service{DB: db}}
	app := fiber.New()
	app.Post("/api/shortlist", h.Manage)
	app.Get("/api/shortlist/:user_id", h.List)
	return app
}

func post(t *testing.T, app *fiber.App, raw string) (int, map[string]interface{}) {
	req := httptest.NewRequest("POST", "/api/shortlist", bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func get(t *testing.T, app *fiber.App, user string) map[string]interface{} {
	resp, err := app.Test(httptest.NewRequest("GET", "/api/shortlist/"+user, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestManage_AddDefaultsActionAndUser(t *testing.T) {
	app := setupShortlistTest(t)

	code, result := post(t, app, `{"designer_id": 2}`)
	assert.Equal(t, 200, code)
	assert.Equal(t, map[string]interface{}{
		"success":           true,
		"message":           "Designer added to shortlist",
		"designer_id":       float64(2),
		"user_id":           "default_user",
		"shortlisted_count": float64(1),
	}, result)

	list := get(t, app, "default_user")
	assert.Equal(t, float64(1), list["count"])
	assert.Equal(t, "default_user", list["user_id"])
	assert.Equal(t, "Rajesh Patel", list["data"].([]interface{})[0].(map[string]interface{})["name"])
}

func TestManage_Remove(t *testing.T) {
	app := setupShortlistTest(t)
	post(t, app, `{"designer_id": 1, "user_id": "u1"}`)
	post(t, app, `{"designer_id": 4, "user_id": "u1"}`)

	code, result := post(t, app, `{"designer_id": 1, "action": "remove", "user_id": "u1"}`)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Designer removed from shortlist", result["message"])
	assert.Equal(t, float64(1), result["shortlisted_count"])

	list := get(t, app, "u1")
	assert.Equal(t, float64(1), list["count"])
}

func TestManage_Errors(t *testing.T) {
	app := setupShortlistTest(t)

	cases := []struct {
		body    string
		code    int
		message string
	}{
		{`{}`, 400, "Designer ID is required"},
		{`not json`, 400, "Designer ID is required"},
		{`{"designer_id": 99}`, 404, "Designer not found"},
		{`{"designer_id": 1, "action": "toggle"}`, 400, "Invalid action. Use 'add' or 'remove'"},
	}
	for _, tc := range cases {
		code, result := post(t, app, tc.body)
		assert.Equal(t, tc.code, code, tc.body)
		assert.Equal(t, false, result["success"])
		assert.Equal(t, tc.message, result["error"], tc.body)
	}
}

func TestList_UnknownUserIsEmpty(t *testing.T) {
	app := setupShortlistTest(t)
	list := get(t, app, "nobody")
	assert.Equal(t, true, list["success"])
	assert.Equal(t, float64(0), list["count"])
	assert.Equal(t, []interface{}{}, list["data"])
}

func TestManage_RequiresJSONContentType(t *testing.T) {
	app := setupShortlistTest(t)

	req := httptest.NewRequest("POST", "/api/shortlist", bytes.NewBufferString(`{"designer_id": 2}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Designer ID is required", result["error"])
	assert.Equal(t, float64(0), get(t, app, "default_user")["count"])

	code, _ := post(t, app, `{"designer_id": 2}`)
	assert.Equal(t, 200, code)
}
