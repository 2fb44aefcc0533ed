package lalin

import (
	"sync"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/datefmt"
)

// Pipeline turns raw transaction rows and the gate master list into the
// report view model. Every run is a full recompute over immutable snapshots;
// the only state is a memo of the last result, keyed by snapshot identity
// and the config tuple, so re-rendering with unchanged inputs is free.
type Pipeline struct {
	fmtr *datefmt.Formatter

	mu   sync.Mutex
	memo *memoEntry
}

type snapshotKey struct {
	lalinsPtr   *domain.LalinItem
	lalinsLen   int
	gerbangsPtr *domain.Gerbang
	gerbangsLen int
	cfg         domain.LalinReportConfig
}

type memoEntry struct {
	key  snapshotKey
	view *domain.LalinViewData
}

func NewPipeline(fmtr *datefmt.Formatter) *Pipeline {
	return &Pipeline{fmtr: fmtr}
}

// Run executes the full pipeline: normalize, filter (date, tab, search),
// sort, paginate. Aggregates are computed over the filtered pre-pagination
// set, so they track the active filter but not the visible page.
func (p *Pipeline) Run(rows []domain.LalinItem, gerbangs []domain.Gerbang, cfg domain.LalinReportConfig) *domain.LalinViewData {
	cfg = withDefaults(cfg)
	key := snapshotKey{
		lalinsLen:   len(rows),
		gerbangsLen: len(gerbangs),
		cfg:         cfg,
	}
	if len(rows) > 0 {
		key.lalinsPtr = &rows[0]
	}
	if len(gerbangs) > 0 {
		key.gerbangsPtr = &gerbangs[0]
	}

	p.mu.Lock()
	if p.memo != nil && p.memo.key == key {
		view := p.memo.view
		p.mu.Unlock()
		return view
	}
	p.mu.Unlock()

	lookup := domain.NewGerbangLookup(gerbangs)
	all := Normalize(rows, lookup, p.fmtr)

	filtered := FilterByDate(all, cfg.FilterDate)
	filtered = FilterByTab(filtered, cfg.FilterTab)
	filtered = FilterBySearch(filtered, cfg.SearchQuery)

	sorted := SortRows(filtered, cfg.Sort)
	paginated := Paginate(sorted, cfg.Page, cfg.PageSize)

	view := &domain.LalinViewData{
		Rows:          sorted,
		PaginatedRows: paginated,
		TotalRows:     len(filtered),
		TotalPages:    TotalPages(len(filtered), cfg.PageSize),
		Kpi:           CalculateKpi(filtered),
		Subtotals:     CalculateSubtotals(filtered),
		GrandTotal:    CalculateGrandTotal(filtered),
	}

	p.mu.Lock()
	p.memo = &memoEntry{key: key, view: view}
	p.mu.Unlock()

	return view
}

func withDefaults(cfg domain.LalinReportConfig) domain.LalinReportConfig {
	if cfg.FilterTab == "" {
		cfg.FilterTab = domain.TabSemua
	}
	if cfg.Sort.Field == "" {
		cfg.Sort.Field = domain.SortTanggal
	}
	if cfg.Sort.Direction == "" {
		cfg.Sort.Direction = domain.SortAsc
	}
	if cfg.Page < 1 {
		cfg.Page = 1
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	return cfg
}
