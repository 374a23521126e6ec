package models

import "time"

// Section mengelompokkan meja pada denah (mis. "Terrace", "Main Hall")
type Section struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayOrder int    `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SectionTable memetakan satu nomor meja ke satu section
type SectionTable struct {
	ID          uint `gorm:"primaryKey"`
	SectionID   uint `gorm:"not null;index"`
	TableNumber int  `gorm:"uniqueIndex;not null"`
}
