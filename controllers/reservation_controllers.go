package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vmihailov/reservation-app/realtime"
	"github.com/vmihailov/reservation-app/services"
	"github.com/vmihailov/reservation-app/utils"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

type reservationRequest struct {
	TableNumber    int    `json:"table_number" binding:"required"`
	TimeSlot       string `json:"time_slot" binding:"required"`
	CustomerName   string `json:"customer_name" binding:"required"`
	PhoneNumber    string `json:"phone_number"`
	AdditionalInfo string `json:"additional_info"`
	WaiterID       *uint  `json:"waiter_id"`
	Status         string `json:"status"` // hanya dipakai saat update
}

// GetAllReservations -> daftar reservasi sesuai filter tanggal/jam
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	sel, err := parseFilterSelection(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx, err := services.ResolveTimeContext(sel, rc.Svc.Loc)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservations, err := rc.Svc.ListForContext(ctx, sel.Status, sel.Table)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Svc.GetByID(uint(id))
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", res)
}

// CreateReservation -> menambahkan reservasi baru setelah cek bentrok
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Svc.Create(services.ReservationInput{
		TableNumber:    req.TableNumber,
		TimeSlot:       req.TimeSlot,
		CustomerName:   req.CustomerName,
		PhoneNumber:    req.PhoneNumber,
		AdditionalInfo: req.AdditionalInfo,
		WaiterID:       req.WaiterID,
	})
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}

	realtime.BroadcastReservation(realtime.EventReservationCreate, *res)
	realtime.BroadcastLayoutUpdate(gin.H{"table_number": res.TableNumber})

	utils.InfoLogger.Printf("New reservation #%d: table %d at %s for %s",
		res.ID, res.TableNumber, res.TimeSlot, res.CustomerName)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", res)
}

// UpdateReservation -> edit reservasi, cek bentrok ulang bila masih Reserved
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		req.Status = "Reserved"
	}

	res, err := rc.Svc.Update(uint(id), services.ReservationInput{
		TableNumber:    req.TableNumber,
		TimeSlot:       req.TimeSlot,
		CustomerName:   req.CustomerName,
		PhoneNumber:    req.PhoneNumber,
		AdditionalInfo: req.AdditionalInfo,
		WaiterID:       req.WaiterID,
	}, req.Status)
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}

	realtime.BroadcastReservation(realtime.EventReservationUpdate, *res)
	realtime.BroadcastLayoutUpdate(gin.H{"table_number": res.TableNumber})

	utils.InfoLogger.Printf("Reservation #%d updated (table %d, %s, status=%s)",
		res.ID, res.TableNumber, res.TimeSlot, res.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", res)
}

// CancelReservation -> menandai Cancelled, riwayat tetap ada
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Svc.Cancel(uint(id))
	if err != nil {
		rc.respondServiceError(c, err)
		return
	}

	realtime.BroadcastReservation(realtime.EventReservationCancel, *res)
	realtime.BroadcastLayoutUpdate(gin.H{"table_number": res.TableNumber})

	utils.InfoLogger.Printf("Reservation #%d cancelled", res.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", res)
}

func (rc *ReservationController) respondServiceError(c *gin.Context, err error) {
	var conflict *services.SchedulingConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"status":  false,
			"message": conflict.Error(),
			"data": gin.H{
				"conflicting_reservation_id": conflict.ReservationID,
				"window_start":               utils.FormatTimeSlot(conflict.Start),
				"window_end":                 utils.FormatTimeSlot(conflict.End),
			},
		})
	case errors.Is(err, services.ErrUnknownTable),
		errors.Is(err, services.ErrInvalidTimeSlot),
		errors.Is(err, services.ErrInvalidStatus):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrReservationMissing):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
