package controllers

import (
	"time"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/pkg/resp"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{Service: service}
}

// GET /admin/dashboard?range=day|week|month
// usersByDay counts distinct customers derived from orders.
func (sc *StatsController) Dashboard(c *gin.Context) {
	report, err := sc.Service.BuildReport(c.Query("range"), time.Now(), services.UsersFromOrders)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(200, report)
}

// GET /admin/stats?range=day|week|month
// Same report, but usersByDay counts new account signups.
func (sc *StatsController) AdminStats(c *gin.Context) {
	report, err := sc.Service.BuildReport(c.Query("range"), time.Now(), services.UsersFromSignups)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(200, report)
}

// GET /admin/users/stats?range=day|week|month
func (sc *StatsController) UserStats(c *gin.Context) {
	report, err := sc.Service.UserSignupSeries(c.Query("range"), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(200, report)
}
