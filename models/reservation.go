package models

import "time"

// Status reservasi: dibatalkan tetap disimpan sebagai riwayat
const (
	StatusReserved  = "Reserved"
	StatusCancelled = "Cancelled"
)

type Reservation struct {
	ID             uint   `gorm:"primaryKey"`
	TableNumber    int    `gorm:"not null;index"`
	TimeSlot       string `gorm:"type:varchar(16);not null"` // "YYYY-MM-DD HH:MM", zona waktu restoran
	CustomerName   string `gorm:"type:varchar(255);not null"`
	PhoneNumber    string `gorm:"type:varchar(50)"`
	AdditionalInfo string `gorm:"type:text"`
	WaiterID       *uint
	Status         string `gorm:"type:varchar(20);not null;default:'Reserved'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
