package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vmihailov/reservation-app/models"
	"github.com/vmihailov/reservation-app/utils"
)

const (
	backupPrefix    = "restaurant_"
	backupExtension = ".json"
	backupTimestamp = "2006-01-02_15-04-05"
)

// snapshot adalah isi satu file backup
type snapshot struct {
	CreatedAt     time.Time             `json:"created_at"`
	Reservations  []models.Reservation  `json:"reservations"`
	Waiters       []models.Waiter       `json:"waiters"`
	Sections      []models.Section      `json:"sections"`
	SectionTables []models.SectionTable `json:"section_tables"`
}

type BackupController struct {
	DB  *gorm.DB
	Dir string
}

func NewBackupController(db *gorm.DB, dir string) *BackupController {
	return &BackupController{DB: db, Dir: dir}
}

// CreateBackup -> tulis snapshot JSON semua data reservasi ke disk
func (bc *BackupController) CreateBackup(c *gin.Context) {
	if err := os.MkdirAll(bc.Dir, 0o755); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var snap snapshot
	snap.CreatedAt = time.Now()
	if err := bc.DB.Find(&snap.Reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := bc.DB.Find(&snap.Waiters).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := bc.DB.Find(&snap.Sections).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := bc.DB.Find(&snap.SectionTables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// uuid pendek mencegah tabrakan nama saat dua backup dalam detik yang sama
	name := fmt.Sprintf("%s%s_%s%s",
		backupPrefix, snap.CreatedAt.Format(backupTimestamp),
		uuid.New().String()[:8], backupExtension)

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := os.WriteFile(filepath.Join(bc.Dir, name), payload, 0o644); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Backup created: %s (%d reservations)", name, len(snap.Reservations))
	utils.RespondJSON(c, http.StatusCreated, "Backup created", gin.H{
		"filename":     name,
		"reservations": len(snap.Reservations),
		"waiters":      len(snap.Waiters),
		"sections":     len(snap.Sections),
	})
}

// ListBackups -> daftar file backup dengan metadata, terbaru dulu
func (bc *BackupController) ListBackups(c *gin.Context) {
	entries, err := os.ReadDir(bc.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			utils.RespondJSON(c, http.StatusOK, "List of backups", []gin.H{})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	backups := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, gin.H{
			"filename":   name,
			"size_bytes": info.Size(),
			"modified":   info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i]["filename"].(string) > backups[j]["filename"].(string)
	})

	utils.RespondJSON(c, http.StatusOK, "List of backups", backups)
}

// RestoreBackup -> ganti seluruh data dengan isi snapshot secara atomik
func (bc *BackupController) RestoreBackup(c *gin.Context) {
	name := c.Param("backup_name")
	// Tolak path traversal
	if name != filepath.Base(name) || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExtension) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid backup name"))
		return
	}

	payload, err := os.ReadFile(filepath.Join(bc.Dir, name))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("backup not found"))
		return
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("corrupt backup file: %w", err))
		return
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Reservation{}, &models.Waiter{}, &models.SectionTable{}, &models.Section{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		if len(snap.Waiters) > 0 {
			if err := tx.Create(&snap.Waiters).Error; err != nil {
				return err
			}
		}
		if len(snap.Sections) > 0 {
			if err := tx.Create(&snap.Sections).Error; err != nil {
				return err
			}
		}
		if len(snap.SectionTables) > 0 {
			if err := tx.Create(&snap.SectionTables).Error; err != nil {
				return err
			}
		}
		if len(snap.Reservations) > 0 {
			if err := tx.Create(&snap.Reservations).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Backup restored: %s (%d reservations)", name, len(snap.Reservations))
	utils.RespondJSON(c, http.StatusOK, "Backup restored", gin.H{
		"filename":     name,
		"reservations": len(snap.Reservations),
	})
}
