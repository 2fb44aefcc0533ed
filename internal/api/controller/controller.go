package controller

import (
	"github.com/satriapw/tolldash/internal/service/auth"
	"github.com/satriapw/tolldash/internal/service/dashboard"
	"github.com/satriapw/tolldash/internal/service/gerbang"
	"github.com/satriapw/tolldash/internal/service/ingest"
	"github.com/satriapw/tolldash/internal/service/lalin"
)

type Controller struct {
	lalinService     *lalin.Service
	dashboardService *dashboard.Service
	gerbangService   *gerbang.Service
	authService      *auth.Service
	ingestService    *ingest.Service
}

func NewController(
	lalinService *lalin.Service,
	dashboardService *dashboard.Service,
	gerbangService *gerbang.Service,
	authService *auth.Service,
	ingestService *ingest.Service,
) *Controller {
	return &Controller{
		lalinService:     lalinService,
		dashboardService: dashboardService,
		gerbangService:   gerbangService,
		authService:      authService,
		ingestService:    ingestService,
	}
}
