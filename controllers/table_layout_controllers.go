package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmihailov/reservation-app/services"
	"github.com/vmihailov/reservation-app/utils"
)

type TableLayoutController struct {
	Svc *services.TableLayoutService
}

func NewTableLayoutController(svc *services.TableLayoutService) *TableLayoutController {
	return &TableLayoutController{Svc: svc}
}

// GetTableLayout -> state semua meja (free/occupied/soon_30) untuk filter terpilih
func (tc *TableLayoutController) GetTableLayout(c *gin.Context) {
	sel, err := parseFilterSelection(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx, err := services.ResolveTimeContext(sel, tc.Svc.Loc)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	states, err := tc.Svc.StatesForContext(ctx)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table layout", gin.H{
		"tables": states,
		"stats":  layoutStats(states),
	})
}

// layoutStats menghitung ringkasan untuk header denah
func layoutStats(states map[int]services.TableStatus) map[string]int {
	stats := map[string]int{
		"free":     0,
		"occupied": 0,
		"soon_30":  0,
		"total":    len(states),
	}
	for _, st := range states {
		stats[string(st.State)]++
	}
	return stats
}
