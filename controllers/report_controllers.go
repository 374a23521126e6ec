package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/services"
	"github.com/vmihailov/reservation-app/utils"
)

type ReportController struct {
	DB    *gorm.DB
	Loc   *time.Location
	Clock services.Clock
}

func NewReportController(db *gorm.DB, loc *time.Location) *ReportController {
	return &ReportController{DB: db, Loc: loc, Clock: services.RealClock{}}
}

// GetReport -> ringkasan reservasi periode berjalan (daily/weekly/monthly)
func (rc *ReportController) GetReport(c *gin.Context) {
	period := c.DefaultQuery("period", "daily")
	if period != "daily" && period != "weekly" && period != "monthly" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown period %q", period))
		return
	}

	matched, err := rc.reservationsInPeriod(period)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	reserved, cancelled := 0, 0
	for _, res := range matched {
		if res.Status == models.StatusCancelled {
			cancelled++
		} else {
			reserved++
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation report: "+period, gin.H{
		"period":       period,
		"total":        len(matched),
		"reserved":     reserved,
		"cancelled":    cancelled,
		"reservations": matched,
	})
}

// reservationsInPeriod memfilter berdasarkan slot di zona waktu restoran
func (rc *ReportController) reservationsInPeriod(period string) ([]models.Reservation, error) {
	var all []models.Reservation
	if err := rc.DB.Find(&all).Error; err != nil {
		return nil, err
	}

	now := rc.Clock.Now().In(rc.Loc)
	nowYear, nowWeek := now.ISOWeek()

	matched := make([]models.Reservation, 0)
	for _, res := range all {
		start, err := utils.ParseTimeSlot(res.TimeSlot, rc.Loc)
		if err != nil {
			continue
		}
		switch period {
		case "daily":
			if utils.SameDate(start, now) {
				matched = append(matched, res)
			}
		case "weekly":
			y, w := start.ISOWeek()
			if y == nowYear && w == nowWeek {
				matched = append(matched, res)
			}
		case "monthly":
			if start.Year() == now.Year() && start.Month() == now.Month() {
				matched = append(matched, res)
			}
		}
	}
	return matched, nil
}

// ExportPDF -> unduh daftar reservasi periode berjalan sebagai PDF
func (rc *ReportController) ExportPDF(c *gin.Context) {
	period := c.DefaultQuery("period", "daily")
	if period != "daily" && period != "weekly" && period != "monthly" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown period %q", period))
		return
	}

	matched, err := rc.reservationsInPeriod(period)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Reservation report (%s) - %s",
		period, rc.Clock.Now().In(rc.Loc).Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(15, 8, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Table", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Time slot", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Customer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, res := range matched {
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", res.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", res.TableNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, res.TimeSlot, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 8, res.CustomerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, res.Status, "1", 1, "C", false, 0, "")
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=reservations_%s.pdf", period))
	c.Header("Content-Type", "application/pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Failed to write report PDF: %v", err)
	}
}
