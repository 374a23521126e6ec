package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/router"
	"github.com/vmihailov/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	// Zona waktu dan direktori tetap deterministik di CI
	os.Setenv("RESTAURANT_TZ", "UTC")
	os.Exit(m.Run())
}

// TestEndToEndReservationFlow menguji flow utama:
// 0. Register admin, login -> token
// 1. Create reservation
// 2. Create bentrok -> 409
// 3. List dengan filter tanggal+jam
// 4. Layout meja -> occupied
// 5. Cancel -> status Cancelled
// 6. Backup snapshot
func TestEndToEndReservationFlow(t *testing.T) {
	os.Setenv("BACKUP_DIR", t.TempDir())
	db := setupTestDB()
	utils.InitDB(db)

	gin.SetMode(gin.TestMode)
	r := router.SetupRouter(db)

	token := registerAndLogin(t, r)

	// 1. Create reservation
	w := doJSON(t, r, "POST", "/admin/reservations", token, map[string]interface{}{
		"table_number":  1,
		"time_slot":     "2024-12-15 17:00",
		"customer_name": "Maria Georgieva",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	created := dataOf(t, w)
	reservationID := int(created["ID"].(float64))

	// 2. Bentrok di meja yang sama
	w = doJSON(t, r, "POST", "/admin/reservations", token, map[string]interface{}{
		"table_number":  1,
		"time_slot":     "2024-12-15 17:30",
		"customer_name": "Late guest",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 3. List dengan konteks waktu
	w = doJSON(t, r, "GET", "/reservations?year=2024&month=12&day=15&hour=17&minute=30", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp["data"].([]interface{}), 1)

	// 4. Layout: meja 1 occupied pada 17:30
	w = doJSON(t, r, "GET", "/tables/layout?year=2024&month=12&day=15&hour=17&minute=30", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	layout := dataOf(t, w)
	tables := layout["tables"].(map[string]interface{})
	table1 := tables["1"].(map[string]interface{})
	assert.Equal(t, "occupied", table1["state"])

	// 5. Cancel
	w = doJSON(t, r, "DELETE", "/admin/reservations/"+strconv.Itoa(reservationID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cancelled := dataOf(t, w)
	assert.Equal(t, "Cancelled", cancelled["Status"])

	// 6. Backup
	w = doJSON(t, r, "POST", "/admin/backups", token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	backup := dataOf(t, w)
	assert.Equal(t, float64(1), backup["reservations"])
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Waiter{},
		&models.Reservation{},
		&models.Section{},
		&models.SectionTable{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, w)
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok, "response data should be an object: %s", w.Body.String())
	return data
}
