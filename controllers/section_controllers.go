package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/utils"
)

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

// GetAllSections -> daftar section beserta nomor mejanya
func (sc *SectionController) GetAllSections(c *gin.Context) {
	var sections []models.Section
	if err := sc.DB.Order("display_order asc").Find(&sections).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type sectionWithTables struct {
		models.Section
		Tables []int `json:"tables"`
	}

	out := make([]sectionWithTables, 0, len(sections))
	for _, s := range sections {
		var mappings []models.SectionTable
		if err := sc.DB.Where("section_id = ?", s.ID).Order("table_number asc").Find(&mappings).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		tables := make([]int, 0, len(mappings))
		for _, m := range mappings {
			tables = append(tables, m.TableNumber)
		}
		out = append(out, sectionWithTables{Section: s, Tables: tables})
	}

	utils.RespondJSON(c, http.StatusOK, "List of sections", out)
}

// CreateSection -> section baru untuk pengelompokan denah
func (sc *SectionController) CreateSection(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		DisplayOrder int    `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	section := models.Section{Name: req.Name, DisplayOrder: req.DisplayOrder}
	if err := sc.DB.Create(&section).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New section created: %s", section.Name)
	utils.RespondJSON(c, http.StatusCreated, "Section created", section)
}

// AssignTables -> pindahkan daftar meja ke section ini; satu meja satu section
func (sc *SectionController) AssignTables(c *gin.Context) {
	sectionID := c.Param("section_id")
	var req struct {
		Tables []int `json:"tables" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var section models.Section
	if err := sc.DB.First(&section, sectionID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range req.Tables {
			if table < 1 {
				return fmt.Errorf("invalid table number %d", table)
			}
			// Lepas dulu dari section lain kalau ada
			if err := tx.Where("table_number = ?", table).Delete(&models.SectionTable{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.SectionTable{SectionID: section.ID, TableNumber: table}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tables assigned to section", gin.H{
		"section_id": section.ID,
		"tables":     req.Tables,
	})
}

// DeleteSection -> hapus section beserta pemetaan mejanya
func (sc *SectionController) DeleteSection(c *gin.Context) {
	sectionID := c.Param("section_id")
	var section models.Section
	if err := sc.DB.First(&section, sectionID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", section.ID).Delete(&models.SectionTable{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Section %d deleted", section.ID)
	utils.RespondJSON(c, http.StatusOK, "Section deleted", gin.H{"id": section.ID})
}
