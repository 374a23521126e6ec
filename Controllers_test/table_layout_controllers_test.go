package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/controllers"
	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/services"
	"github.com/vmihailov/reservation-app/utils"
)

func setupLayoutRouter(db *gorm.DB, numTables int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	svc := services.NewTableLayoutService(db, time.UTC, numTables)
	ctrl := controllers.NewTableLayoutController(svc)
	router.GET("/tables/layout", ctrl.GetTableLayout)
	return router
}

func TestGetTableLayoutEndpoint(t *testing.T) {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Reservation{}))

	// Meja 1 ongoing pada 17:30, meja 3 mulai 17:45 (soon)
	db.Create(&models.Reservation{TableNumber: 1, TimeSlot: "2024-12-15 16:30", CustomerName: "A", Status: "Reserved"})
	db.Create(&models.Reservation{TableNumber: 3, TimeSlot: "2024-12-15 17:45", CustomerName: "B", Status: "Reserved"})

	router := setupLayoutRouter(db, 10)

	req, err := http.NewRequest("GET",
		"/tables/layout?year=2024&month=12&day=15&hour=17&minute=30", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Table layout", response["message"])

	data := response["data"].(map[string]interface{})
	tables := data["tables"].(map[string]interface{})

	table1 := tables["1"].(map[string]interface{})
	assert.Equal(t, "occupied", table1["state"])
	assert.Equal(t, "2024-12-15 16:30", table1["reserved_from"])

	table3 := tables["3"].(map[string]interface{})
	assert.Equal(t, "soon_30", table3["state"])

	table5 := tables["5"].(map[string]interface{})
	assert.Equal(t, "free", table5["state"])

	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(10), stats["total"])
	assert.Equal(t, float64(8), stats["free"])
	assert.Equal(t, float64(1), stats["occupied"])
	assert.Equal(t, float64(1), stats["soon_30"])
}
