package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/utils"
)

// TableState adalah warna meja di denah
type TableState string

const (
	TableFree     TableState = "free"
	TableOccupied TableState = "occupied"
	TableSoon     TableState = "soon_30" // terisi dalam 30 menit
)

// TableStatus is the per-table classification result. ReservedFrom carries
// the start slot of the reservation that triggered a non-free state.
type TableStatus struct {
	State        TableState `json:"state"`
	ReservedFrom *string    `json:"reserved_from,omitempty"`
}

type TableLayoutService struct {
	DB        *gorm.DB
	Loc       *time.Location
	NumTables int
	Clock     Clock
}

func NewTableLayoutService(db *gorm.DB, loc *time.Location, numTables int) *TableLayoutService {
	return &TableLayoutService{DB: db, Loc: loc, NumTables: numTables, Clock: RealClock{}}
}

// StatesForContext classifies every table 1..NumTables for the resolved
// filter context.
//
// Only Reserved reservations count, and the strict date boundary applies
// before any time logic: another day's bookings never influence the grid.
// With an instant selected, a table is OCCUPIED when a window contains the
// instant (end exclusive), otherwise SOON when a reservation starts within
// the next 30 minutes inclusive. OCCUPIED wins over SOON for the same table.
//
// With no instant selected the grid degrades to a coarse "anything booked"
// view: every remaining reservation starting at or after the clock's now is
// reported OCCUPIED. This deliberately skips the ongoing check (there is no
// instant to evaluate it against) and mirrors the behaviour staff rely on
// when no time filter is pinned.
func (s *TableLayoutService) StatesForContext(ctx TimeContext) (map[int]TableStatus, error) {
	var all []models.Reservation
	if err := s.DB.Find(&all).Error; err != nil {
		return nil, err
	}

	states := make(map[int]TableStatus, s.NumTables)
	for i := 1; i <= s.NumTables; i++ {
		states[i] = TableStatus{State: TableFree}
	}

	occupied := make(map[int]time.Time)
	soon := make(map[int]time.Time)

	for _, res := range all {
		if res.Status != models.StatusReserved {
			continue
		}
		start, err := utils.ParseTimeSlot(res.TimeSlot, s.Loc)
		if err != nil {
			continue
		}
		// Batas tanggal ketat: booking hari lain tidak boleh mewarnai denah
		if ctx.Date != nil && !utils.SameDate(start, *ctx.Date) {
			continue
		}
		table := res.TableNumber
		if table < 1 || table > s.NumTables {
			continue
		}

		if ctx.Instant != nil {
			end := utils.ReservationEnd(start)
			if utils.IsOngoing(start, end, *ctx.Instant) {
				occupied[table] = start
			} else if _, taken := occupied[table]; !taken {
				if utils.IsSoon(start, *ctx.Instant) {
					soon[table] = start
				}
			}
		} else {
			now := s.Clock.Now().In(s.Loc)
			if !start.Before(now) {
				occupied[table] = start
			}
		}
	}

	for table, start := range occupied {
		slot := utils.FormatTimeSlot(start)
		states[table] = TableStatus{State: TableOccupied, ReservedFrom: &slot}
	}
	for table, start := range soon {
		// OCCUPIED selalu menang atas SOON
		if states[table].State != TableFree {
			continue
		}
		slot := utils.FormatTimeSlot(start)
		states[table] = TableStatus{State: TableSoon, ReservedFrom: &slot}
	}

	return states, nil
}
