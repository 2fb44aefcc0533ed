package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/satriapw/tolldash/internal/api/controller"
	"github.com/satriapw/tolldash/internal/pkg/constants"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store"
	"github.com/satriapw/tolldash/internal/service/auth"
	"github.com/satriapw/tolldash/internal/service/dashboard"
	"github.com/satriapw/tolldash/internal/service/gerbang"
	"github.com/satriapw/tolldash/internal/service/ingest"
	"github.com/satriapw/tolldash/internal/service/lalin"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	locale := viper.GetString(constants.ViperLocale)
	if locale == "" {
		locale = constants.DefaultLocale
	}
	fmtr := datefmt.NewFormatter(locale)

	cntrl := controller.NewController(
		lalin.NewService(st, fmtr),
		dashboard.NewService(st, fmtr),
		gerbang.NewService(st),
		auth.NewService(st),
		ingest.NewService(st, viper.GetString(constants.ViperUpstreamURL)),
	)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.Signup)
	authGroup.POST("/login", cntrl.Login)

	lalins := api.Group("/lalins", svc.AuthMiddleware)
	lalins.GET("", cntrl.ListLalins)
	lalins.GET("/report", cntrl.LalinReport)
	lalins.POST("/sync", cntrl.SyncLalins)

	api.GET("/dashboard", cntrl.Dashboard, svc.AuthMiddleware)

	gerbangs := api.Group("/gerbangs", svc.AuthMiddleware)
	gerbangs.GET("", cntrl.ListGerbangs)
	gerbangs.POST("", cntrl.CreateGerbang)
	gerbangs.PUT("", cntrl.UpdateGerbang)
	gerbangs.DELETE("", cntrl.DeleteGerbang)

	return svc, nil
}
