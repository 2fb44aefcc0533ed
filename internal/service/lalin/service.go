package lalin

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
	"github.com/satriapw/tolldash/internal/pkg/store"
)

// Service serves the traffic report: it fetches the raw rows and the gate
// master list and feeds them through the pipeline.
type Service struct {
	store    store.Store
	pipeline *Pipeline
}

func NewService(s store.Store, fmtr *datefmt.Formatter) *Service {
	return &Service{store: s, pipeline: NewPipeline(fmtr)}
}

// Report computes the report view for one parameter tuple. The two source
// collections are fetched concurrently; an empty database produces an empty
// view, not an error.
func (s *Service) Report(ctx context.Context, cfg domain.LalinReportConfig) (*domain.LalinViewData, error) {
	var (
		rows     []domain.LalinItem
		gerbangs []domain.Gerbang
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		rows, err = s.store.ListLalins(egCtx, store.ListLalinsOpts{})
		return err
	})
	eg.Go(func() error {
		var err error
		gerbangs, err = s.store.ListGerbangs(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return s.pipeline.Run(rows, gerbangs, cfg), nil
}

// ListRaw exposes the raw rows for the envelope endpoint. A non-nil date
// narrows the listing to one day.
func (s *Service) ListRaw(ctx context.Context, date *time.Time) ([]domain.LalinItem, error) {
	return s.store.ListLalins(ctx, store.ListLalinsOpts{Date: date})
}
