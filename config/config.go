package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultSQLitePath = "restaurant.db"
	defaultNumTables  = 50
)

// InitDB membuka koneksi database sesuai env.
// DB_DRIVER=sqlite (default) atau mysql; DB_DSN override DSN lengkap.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "mysql":
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
				os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_NAME"))
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		if dsn == "" {
			dsn = defaultSQLitePath
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}

// RestaurantLocation memuat zona waktu restoran dari RESTAURANT_TZ.
// Semua slot reservasi diinterpretasikan di zona ini, bukan zona host.
func RestaurantLocation() (*time.Location, error) {
	tz := os.Getenv("RESTAURANT_TZ")
	if tz == "" {
		tz = "Europe/Sofia"
	}
	return time.LoadLocation(tz)
}

// NumTables jumlah meja di denah (env NUM_TABLES, default 50)
func NumTables() int {
	if v := os.Getenv("NUM_TABLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultNumTables
}

// CORSOrigin origin frontend yang diizinkan (env CORS_ORIGIN).
// Default "*"; dengan wildcard browser menolak credentialed request,
// jadi deployment dengan cookie/header auth wajib set origin eksplisit.
func CORSOrigin() string {
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		return origin
	}
	return "*"
}

// BackupDir direktori snapshot backup (env BACKUP_DIR, default ./backups)
func BackupDir() string {
	if dir := os.Getenv("BACKUP_DIR"); dir != "" {
		return dir
	}
	return "backups"
}
