package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/services"
	"github.com/Surya-k-bot/food-management-system/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupAPI builds the real router against a fresh in-memory database, with
// every notification channel left unconfigured so publishing is silent.
func setupAPI(t *testing.T) (*gin.Engine, *appcfg.App, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.FoodItem{}, &models.Feedback{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	appcfg.DB = db

	cfg := &appcfg.App{
		JWTSecret:         "unit-test-secret-unit-test-secret",
		LowStockThreshold: 5,
		EmailFrom:         "noreply@cfms.local",
		MediaRoot:         t.TempDir(),
	}
	dispatcher := services.NewDispatcher(cfg, db, nil)
	return SetupRouter(cfg, dispatcher, nil), cfg, db
}

func seedUser(t *testing.T, db *gorm.DB, username, email, password string, staff, active bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		IsActive: active,
		IsStaff:  staff,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func bearer(t *testing.T, cfg *appcfg.App, username string) string {
	t.Helper()
	token, err := utils.GenerateJWT(cfg.JWTSecret, username)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return out
}

func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (%s)", w.Code, status, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["error"] != message {
		t.Errorf("error = %q, want %q", body["error"], message)
	}
}
