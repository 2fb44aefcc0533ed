package gerbang

import (
	"context"

	"github.com/satriapw/tolldash/internal/domain"
	"github.com/satriapw/tolldash/internal/pkg/logger"
	"github.com/satriapw/tolldash/internal/pkg/store"
)

// GerbangPayload is the create/update request body.
type GerbangPayload struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	IDCabang    int64  `json:"IdCabang" validate:"required,gt=0"`
	NamaGerbang string `json:"NamaGerbang" validate:"required"`
	NamaCabang  string `json:"NamaCabang" validate:"required"`
}

// DeletePayload identifies the record to remove.
type DeletePayload struct {
	ID       int64 `json:"id" validate:"required,gt=0"`
	IDCabang int64 `json:"IdCabang" validate:"required,gt=0"`
}

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// List fetches the master collection and runs the listing pipeline over it.
func (s *Service) List(ctx context.Context, cfg domain.GerbangListConfig) (*domain.GerbangViewData, error) {
	gerbangs, err := s.store.ListGerbangs(ctx)
	if err != nil {
		return nil, err
	}

	return Process(gerbangs, cfg), nil
}

func (s *Service) Create(ctx context.Context, payload *GerbangPayload) (*domain.Gerbang, error) {
	created, err := s.store.InsertGerbang(ctx, &domain.Gerbang{
		ID:          payload.ID,
		IDCabang:    payload.IDCabang,
		NamaGerbang: payload.NamaGerbang,
		NamaCabang:  payload.NamaCabang,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "created gerbang %d (%s)", created.ID, created.NamaGerbang)
	return created, nil
}

func (s *Service) Update(ctx context.Context, payload *GerbangPayload) (*domain.Gerbang, error) {
	updated, err := s.store.UpdateGerbang(ctx, &domain.Gerbang{
		ID:          payload.ID,
		IDCabang:    payload.IDCabang,
		NamaGerbang: payload.NamaGerbang,
		NamaCabang:  payload.NamaCabang,
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, payload *DeletePayload) error {
	if err := s.store.DeleteGerbang(ctx, payload.ID, payload.IDCabang); err != nil {
		return err
	}

	logger.Infof(ctx, "deleted gerbang %d", payload.ID)
	return nil
}
