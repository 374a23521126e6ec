package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/utils"
)

type WaiterController struct {
	DB *gorm.DB
}

func NewWaiterController(db *gorm.DB) *WaiterController {
	return &WaiterController{DB: db}
}

// GetAllWaiters -> daftar pelayan untuk dropdown form reservasi
func (wc *WaiterController) GetAllWaiters(c *gin.Context) {
	var waiters []models.Waiter
	if err := wc.DB.Find(&waiters).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of waiters", waiters)
}

// CreateWaiter -> menambahkan pelayan baru
func (wc *WaiterController) CreateWaiter(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	waiter := models.Waiter{Name: req.Name}
	if err := wc.DB.Create(&waiter).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New waiter created: %s", waiter.Name)
	utils.RespondJSON(c, http.StatusCreated, "Waiter created", waiter)
}

// UpdateWaiter -> ganti nama pelayan
func (wc *WaiterController) UpdateWaiter(c *gin.Context) {
	waiterID := c.Param("waiter_id")
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var waiter models.Waiter
	if err := wc.DB.First(&waiter, waiterID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	waiter.Name = req.Name
	if err := wc.DB.Save(&waiter).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Waiter updated", waiter)
}

// DeleteWaiter -> menghapus pelayan; reservasi lama tetap menyimpan id-nya
func (wc *WaiterController) DeleteWaiter(c *gin.Context) {
	waiterID := c.Param("waiter_id")
	var waiter models.Waiter
	if err := wc.DB.First(&waiter, waiterID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := wc.DB.Delete(&waiter).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Waiter %d deleted", waiter.ID)
	utils.RespondJSON(c, http.StatusOK, "Waiter deleted", gin.H{"id": waiter.ID})
}
