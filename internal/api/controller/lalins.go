package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/satriapw/tolldash/internal/domain"
)

// ListLalins returns the raw rows in the legacy paging envelope. The whole
// collection fits one envelope page; pipelines do their own paging.
func (c *Controller) ListLalins(ctx echo.Context) error {
	var date *time.Time
	if raw := ctx.QueryParam("tanggal"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err == nil {
			date = &parsed
		}
	}

	rows, err := c.lalinService.ListRaw(ctx.Request().Context(), date)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("success", domain.ListData{
		TotalPages:  1,
		CurrentPage: 1,
		Count:       len(rows),
		Rows:        domain.RowsData{Count: len(rows), Rows: rows},
	}))
}

// LalinReport runs the report pipeline with the query parameters as config.
func (c *Controller) LalinReport(ctx echo.Context) error {
	cfg := domain.LalinReportConfig{
		FilterDate:  ctx.QueryParam("filterDate"),
		FilterTab:   domain.LalinTab(ctx.QueryParam("filterTab")),
		SearchQuery: ctx.QueryParam("searchQuery"),
		Sort: domain.LalinSortConfig{
			Field:     domain.LalinSortField(ctx.QueryParam("sortField")),
			Direction: domain.SortDirection(ctx.QueryParam("sortDir")),
		},
		Page:     queryInt(ctx, "page", 1),
		PageSize: queryInt(ctx, "pageSize", 0),
	}

	view, err := c.lalinService.Report(ctx.Request().Context(), cfg)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("success", view))
}

// SyncLalins pulls rows from the upstream backend into local storage.
func (c *Controller) SyncLalins(ctx echo.Context) error {
	count, err := c.ingestService.Sync(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("success", map[string]int{"synced": count}))
}

func queryInt(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
