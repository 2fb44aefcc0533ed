package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/constants"
)

// Dashboard builds the overview snapshot for an optional date filter.
func (c *Controller) Dashboard(ctx echo.Context) error {
	topN := queryInt(ctx, "topN", viper.GetInt(constants.ViperDashboardTop))
	if topN < 1 {
		topN = constants.DefaultDashboardTop
	}

	overview, err := c.dashboardService.Overview(ctx.Request().Context(), domain.DashboardConfig{
		FilterDate: ctx.QueryParam("filterDate"),
		TopN:       topN,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("success", overview))
}
