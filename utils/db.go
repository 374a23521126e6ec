package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	sharedDB *gorm.DB
	dbOnce   sync.Once
)

// InitDB menyimpan handle gorm proses-lebar untuk kode yang tidak
// menerima *gorm.DB lewat constructor (middleware auth memuat user dari
// klaim token di sini). Hanya pemanggilan pertama yang menang; test yang
// menjalankan router penuh tidak bisa saling menimpa koneksi.
func InitDB(database *gorm.DB) {
	dbOnce.Do(func() {
		sharedDB = database
	})
}

// GetDB mengembalikan handle yang disimpan InitDB, nil kalau belum ada.
func GetDB() *gorm.DB {
	return sharedDB
}
