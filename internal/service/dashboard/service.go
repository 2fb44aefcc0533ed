package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
	"github.com/satriapw/tolldash/internal/pkg/store"
)

// Service builds the dashboard overview snapshot from the current dataset.
type Service struct {
	store   store.Store
	fmtr    *datefmt.Formatter
	printer *message.Printer
}

func NewService(s store.Store, fmtr *datefmt.Formatter) *Service {
	return &Service{
		store:   s,
		fmtr:    fmtr,
		printer: message.NewPrinter(language.Indonesian),
	}
}

// Overview fetches both collections concurrently and aggregates them into a
// fresh snapshot. Empty collections yield a zeroed overview, never an error.
func (s *Service) Overview(ctx context.Context, cfg domain.DashboardConfig) (*domain.DashboardOverview, error) {
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

	return s.Build(rows, gerbangs, cfg), nil
}

// Build is the pure aggregation over already-materialized snapshots.
func (s *Service) Build(rows []domain.LalinItem, gerbangs []domain.Gerbang, cfg domain.DashboardConfig) *domain.DashboardOverview {
	if cfg.TopN < 1 {
		cfg.TopN = 6
	}

	filtered := FilterByDate(rows, cfg.FilterDate, s.fmtr)
	lookup := domain.NewGerbangLookup(gerbangs)

	kpi := CalculateKpi(filtered, CountActiveGates(filtered))
	paymentMethods := AggregatePaymentMethods(filtered)
	gateTraffic := AggregateGateTraffic(filtered, lookup, cfg.TopN)
	shiftTraffic := AggregateShiftTraffic(filtered)
	branchTraffic := AggregateBranchTraffic(filtered, lookup)

	return &domain.DashboardOverview{
		Kpi:            kpi,
		PaymentMethods: paymentMethods,
		GateTraffic:    gateTraffic,
		ShiftTraffic:   shiftTraffic,
		BranchTraffic:  branchTraffic,
		Insights:       DeriveInsights(kpi, paymentMethods, gateTraffic, shiftTraffic, branchTraffic, s.printer),
	}
}
