package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/constants"
	"github.com/satriapw/tolldash/internal/service/gerbang"
)

// ListGerbangs runs the master-table pipeline and answers in the legacy
// envelope; the count reflects the filtered set, not the page.
func (c *Controller) ListGerbangs(ctx echo.Context) error {
	pageSize := queryInt(ctx, "pageSize", viper.GetInt(constants.ViperPageSize))
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	cfg := domain.GerbangListConfig{
		SearchQuery: ctx.QueryParam("searchQuery"),
		Sort: domain.GerbangSortConfig{
			Field:     ctx.QueryParam("sortField"),
			Direction: domain.SortDirection(ctx.QueryParam("sortDir")),
		},
		Page:     queryInt(ctx, "page", 1),
		PageSize: pageSize,
	}

	view, err := c.gerbangService.List(ctx.Request().Context(), cfg)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("success", domain.ListData{
		TotalPages:  view.TotalPages,
		CurrentPage: cfg.Page,
		Count:       view.TotalItems,
		Rows:        domain.RowsData{Count: len(view.PaginatedData), Rows: view.PaginatedData},
	}))
}

func (c *Controller) CreateGerbang(ctx echo.Context) error {
	payload := new(gerbang.GerbangPayload)
	if err := ctx.Bind(payload); err != nil {
		return err
	}
	if err := ctx.Validate(payload); err != nil {
		return err
	}

	created, err := c.gerbangService.Create(ctx.Request().Context(), payload)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, domain.OK("created", created))
}

func (c *Controller) UpdateGerbang(ctx echo.Context) error {
	payload := new(gerbang.GerbangPayload)
	if err := ctx.Bind(payload); err != nil {
		return err
	}
	if err := ctx.Validate(payload); err != nil {
		return err
	}

	updated, err := c.gerbangService.Update(ctx.Request().Context(), payload)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("updated", updated))
}

func (c *Controller) DeleteGerbang(ctx echo.Context) error {
	payload := new(gerbang.DeletePayload)
	if err := ctx.Bind(payload); err != nil {
		return err
	}
	if err := ctx.Validate(payload); err != nil {
		return err
	}

	if err := c.gerbangService.Delete(ctx.Request().Context(), payload); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK("deleted", nil))
}
