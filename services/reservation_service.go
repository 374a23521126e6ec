package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/utils"
)

var (
	ErrUnknownTable       = errors.New("table number out of range")
	ErrInvalidTimeSlot    = errors.New("invalid time slot format, expected YYYY-MM-DD HH:MM")
	ErrInvalidStatus      = errors.New("status must be Reserved or Cancelled")
	ErrReservationMissing = errors.New("reservation not found")
)

// SchedulingConflictError dikembalikan saat create/update bertabrakan
// dengan reservasi Reserved lain di meja yang sama.
type SchedulingConflictError struct {
	ReservationID uint
	Start         time.Time
	End           time.Time
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("table already reserved from %s to %s (reservation #%d)",
		utils.FormatTimeSlot(e.Start), e.End.Format("15:04"), e.ReservationID)
}

// ReservationInput adalah payload create/edit dari layar form.
type ReservationInput struct {
	TableNumber    int
	TimeSlot       string
	CustomerName   string
	PhoneNumber    string
	AdditionalInfo string
	WaiterID       *uint
}

type ReservationService struct {
	DB        *gorm.DB
	Loc       *time.Location
	NumTables int
}

func NewReservationService(db *gorm.DB, loc *time.Location, numTables int) *ReservationService {
	return &ReservationService{DB: db, Loc: loc, NumTables: numTables}
}

// ListForContext returns the reservations relevant to the resolved filter,
// sorted ascending by start time (ties broken by table number).
//
// Checks run per reservation in this order, short-circuiting on the first
// failure: status filter, table filter, strict date boundary, time
// relevance. The date boundary is evaluated before any time logic so a
// reservation from another date can never leak in just because it is
// "in the future" relative to the selected instant. With an instant set,
// a reservation passes when it is ongoing (start <= instant < end) or
// future (start >= instant); already-ended ones are excluded.
func (s *ReservationService) ListForContext(ctx TimeContext, statusFilter string, tableFilter *int) ([]models.Reservation, error) {
	var all []models.Reservation
	if err := s.DB.Find(&all).Error; err != nil {
		return nil, err
	}

	type entry struct {
		res   models.Reservation
		start time.Time
	}
	filtered := make([]entry, 0, len(all))

	for _, res := range all {
		if statusFilter != "" && res.Status != statusFilter {
			continue
		}
		if tableFilter != nil && res.TableNumber != *tableFilter {
			continue
		}

		start, err := utils.ParseTimeSlot(res.TimeSlot, s.Loc)
		if err != nil {
			// Slot rusak tidak pernah tampil, jangan bikin query gagal
			utils.ErrorLogger.Printf("Skipping reservation %d with malformed slot %q", res.ID, res.TimeSlot)
			continue
		}

		// Batas tanggal ketat dievaluasi sebelum logika jam
		if ctx.Date != nil && !utils.SameDate(start, *ctx.Date) {
			continue
		}

		if ctx.Instant != nil {
			end := utils.ReservationEnd(start)
			ongoing := utils.IsOngoing(start, end, *ctx.Instant)
			future := !start.Before(*ctx.Instant)
			if !ongoing && !future {
				continue
			}
		}

		filtered = append(filtered, entry{res: res, start: start})
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].start.Equal(filtered[j].start) {
			return filtered[i].res.TableNumber < filtered[j].res.TableNumber
		}
		return filtered[i].start.Before(filtered[j].start)
	})

	out := make([]models.Reservation, len(filtered))
	for i, e := range filtered {
		out[i] = e.res
	}
	return out, nil
}

// GetByID mengambil satu reservasi
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationMissing
		}
		return nil, err
	}
	return &res, nil
}

// Create validates the payload, runs the overlap check and inserts the
// reservation, all inside one transaction so two near-simultaneous
// creations cannot both observe "no conflict" and both commit.
func (s *ReservationService) Create(in ReservationInput) (*models.Reservation, error) {
	start, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	res := models.Reservation{
		TableNumber:    in.TableNumber,
		TimeSlot:       utils.FormatTimeSlot(start),
		CustomerName:   in.CustomerName,
		PhoneNumber:    in.PhoneNumber,
		AdditionalInfo: in.AdditionalInfo,
		WaiterID:       in.WaiterID,
		Status:         models.StatusReserved,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.conflictFor(tx, in.TableNumber, start, 0); err != nil {
			return err
		}
		return tx.Create(&res).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Update mengubah reservasi; cek bentrok hanya saat status tetap Reserved,
// reservasi yang sedang diedit dikecualikan dari pengecekan.
func (s *ReservationService) Update(id uint, in ReservationInput, status string) (*models.Reservation, error) {
	if status != models.StatusReserved && status != models.StatusCancelled {
		return nil, ErrInvalidStatus
	}
	start, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	var res models.Reservation
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationMissing
			}
			return err
		}

		if status == models.StatusReserved {
			if err := s.conflictFor(tx, in.TableNumber, start, id); err != nil {
				return err
			}
		}

		res.TableNumber = in.TableNumber
		res.TimeSlot = utils.FormatTimeSlot(start)
		res.CustomerName = in.CustomerName
		res.PhoneNumber = in.PhoneNumber
		res.AdditionalInfo = in.AdditionalInfo
		res.WaiterID = in.WaiterID
		res.Status = status
		return tx.Save(&res).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Cancel menandai reservasi sebagai Cancelled, riwayat tetap tersimpan
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationMissing
		}
		return nil, err
	}
	res.Status = models.StatusCancelled
	if err := s.DB.Save(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ReservationService) validate(in ReservationInput) (time.Time, error) {
	if in.TableNumber < 1 || in.TableNumber > s.NumTables {
		return time.Time{}, ErrUnknownTable
	}
	start, err := utils.ParseTimeSlot(in.TimeSlot, s.Loc)
	if err != nil {
		return time.Time{}, ErrInvalidTimeSlot
	}
	return start, nil
}

// conflictFor checks the candidate window [start, start+90min) against every
// Reserved reservation on the same table, excluding excludeID when editing.
// Two half-open windows overlap when candidate.start < other.end and
// other.start < candidate.end; back-to-back reservations do not conflict.
func (s *ReservationService) conflictFor(tx *gorm.DB, tableNumber int, start time.Time, excludeID uint) error {
	end := utils.ReservationEnd(start)

	var existing []models.Reservation
	if err := s.reservedOnTable(tx, tableNumber, excludeID).Find(&existing).Error; err != nil {
		return err
	}

	for _, other := range existing {
		otherStart, err := utils.ParseTimeSlot(other.TimeSlot, s.Loc)
		if err != nil {
			continue
		}
		otherEnd := utils.ReservationEnd(otherStart)
		if start.Before(otherEnd) && otherStart.Before(end) {
			return &SchedulingConflictError{
				ReservationID: other.ID,
				Start:         otherStart,
				End:           otherEnd,
			}
		}
	}
	return nil
}

// reservedOnTable membangun query reservasi Reserved di satu meja.
// Di MySQL (REPEATABLE READ) baris dikunci dengan FOR UPDATE: tanpa lock,
// dua transaksi bersamaan sama-sama membaca snapshot tanpa konflik lalu
// sama-sama commit. SQLite tidak mengenal sintaksnya dan sudah
// menserialkan penulisan.
func (s *ReservationService) reservedOnTable(tx *gorm.DB, tableNumber int, excludeID uint) *gorm.DB {
	query := tx.Where("table_number = ? AND status = ?", tableNumber, models.StatusReserved)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return query
}
