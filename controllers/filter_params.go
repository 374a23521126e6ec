package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vmihailov/reservation-app/services"
)

// parseFilterSelection membaca query param filter (year, month, day, hour,
// minute, status, table); param kosong berarti tidak dipilih
func parseFilterSelection(c *gin.Context) (services.FilterSelection, error) {
	var sel services.FilterSelection

	intParam := func(name string) (*int, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s parameter: %q", name, raw)
		}
		return &v, nil
	}

	var err error
	if sel.Year, err = intParam("year"); err != nil {
		return sel, err
	}
	if sel.Month, err = intParam("month"); err != nil {
		return sel, err
	}
	if sel.Day, err = intParam("day"); err != nil {
		return sel, err
	}
	if sel.Hour, err = intParam("hour"); err != nil {
		return sel, err
	}
	if sel.Minute, err = intParam("minute"); err != nil {
		return sel, err
	}
	if sel.Table, err = intParam("table"); err != nil {
		return sel, err
	}
	sel.Status = c.Query("status")

	return sel, nil
}
