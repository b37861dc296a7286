package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type DashboardController struct{}

func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// Get is the manager dashboard: kitchen and system statistics.
func (dc *DashboardController) Get(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	stats, err := d.Statistics.Load(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	data := gin.H{"kitchen": stats.Kitchen, "system": stats.System}
	if stats.System != nil {
		data["salesToday"] = utils.FormatMoney(stats.System.TotalSalesToday)
		data["totalRevenue"] = utils.FormatMoney(stats.System.TotalRevenue)
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard", data)
}
