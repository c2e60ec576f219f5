package donations

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"regive-backend/internal/identity"
	"regive-backend/internal/middleware"
	"regive-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupHandlersTest(t *testing.T) (*Handlers, *fiber.App) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Donation{}, &models.CollectedDonation{}, &models.Beneficiary{}))
	h := &Handlers{Service: &Service{DB: db}}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		middleware.SetAccount(c, &identity.Account{UID: "uid-1", Email: "a@gmail.com", Admin: true})
		return c.Next()
	})
	return h, app
}

func TestSubmitHandler_Created(t *testing.T) {
	h, app := setupHandlersTest(t)
	app.Post("/donations", h.Submit)

	body, _ := json.Marshal(map[string]interface{}{
		"items":         []string{"shirt"},
		"donor_name":    "A Donor",
		"donor_email":   "a@gmail.com",
		"donor_contact": "0123456789",
		"pickup":        "home",
		"images":        []string{"url1"},
	})
	req := httptest.NewRequest("POST", "/donations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "success", result["status"])
	assert.Equal(t, "Donation submitted successfully", result["message"])
}

func TestSubmitHandler_InvalidEmail(t *testing.T) {
	h, app := setupHandlersTest(t)
	app.Post("/donations", h.Submit)

	body, _ := json.Marshal(map[string]interface{}{
		"items":         []string{"shirt"},
		"donor_name":    "A Donor",
		"donor_email":   "a@example.com",
		"donor_contact": "0123456789",
		"pickup":        "home",
		"images":        []string{"url1"},
	})
	req := httptest.NewRequest("POST", "/donations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "error", result["status"])
}

func TestCollectHandler_InvalidID(t *testing.T) {
	h, app := setupHandlersTest(t)
	app.Post("/donations/:id/collect", h.Collect)

	req := httptest.NewRequest("POST", "/donations/not-a-uuid/collect", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCollectHandler_NotFound(t *testing.T) {
	h, app := setupHandlersTest(t)
	app.Post("/donations/:id/collect", h.Collect)

	req := httptest.NewRequest("POST", "/donations/550e8400-e29b-41d4-a716-446655440000/collect", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDistributeHandler_MissingAddress(t *testing.T) {
	h, app := setupHandlersTest(t)
	app.Post("/collected/:id/distribute", h.Distribute)

	body, _ := json.Marshal(map[string]string{"name": "Jane"})
	req := httptest.NewRequest("POST", "/collected/550e8400-e29b-41d4-a716-446655440000/distribute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
