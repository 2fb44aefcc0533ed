package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store"
)

// Service pulls raw transaction rows from the upstream REST backend and
// upserts them into local storage. The upstream speaks the legacy paging
// envelope with a nested rows list.
type Service struct {
	store   store.Store
	client  *http.Client
	baseURL string
}

func NewService(s store.Store, baseURL string) *Service {
	return &Service{
		store:   s,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
	}
}

type upstreamResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		TotalPages  int `json:"total_pages"`
		CurrentPage int `json:"current_page"`
		Rows        struct {
			Count int                `json:"count"`
			Rows  []domain.LalinItem `json:"rows"`
		} `json:"rows"`
	} `json:"data"`
}

// Sync fetches every page of lalin rows from upstream and upserts them.
// Returns the number of rows written.
func (s *Service) Sync(ctx context.Context) (int, error) {
	first, err := s.fetchPage(ctx, 1)
	if err != nil {
		return 0, fmt.Errorf("fetch first page: %w", err)
	}

	pages := make([][]domain.LalinItem, first.Data.TotalPages)
	if len(pages) == 0 {
		pages = make([][]domain.LalinItem, 1)
	}
	pages[0] = first.Data.Rows.Rows

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for page := 2; page <= first.Data.TotalPages; page++ {
		page := page
		eg.Go(func() error {
			resp, err := s.fetchPage(egCtx, page)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", page, err)
			}
			pages[page-1] = resp.Data.Rows.Rows
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, rows := range pages {
		n, err := s.store.UpsertLalins(ctx, rows)
		if err != nil {
			return total, err
		}
		total += n
	}

	logger.Infof(ctx, "synced %d lalin rows from upstream", total)
	return total, nil
}

func (s *Service) fetchPage(ctx context.Context, page int) (*upstreamResponse, error) {
	url := fmt.Sprintf("%s/api/lalins?page=%d", s.baseURL, page)

	var body []byte
	err := backoff.Retry(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return backoff.Permanent(err)
			}

			resp, err := s.client.Do(req)
			if err != nil {
				return fmt.Errorf("http.Get: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			body, err = io.ReadAll(resp.Body)
			return err
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	parsed := new(upstreamResponse)
	if err := sonic.Unmarshal(body, parsed); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	if !parsed.Status {
		return nil, fmt.Errorf("upstream rejected request: %s", parsed.Message)
	}

	return parsed, nil
}
