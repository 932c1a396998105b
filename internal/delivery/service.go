package delivery

import (
	"context"

	"github.com/ethanwang/hookpulse/internal/apperror"
)

type ListResponse struct {
	Deliveries []Record `json:"deliveries"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
}

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, page, perPage int) (*ListResponse, error) {
	page, perPage = clampPage(page, perPage)
	offset := (page - 1) * perPage

	records, err := s.store.List(ctx, perPage, offset)
	if err != nil {
		return nil, apperror.Internalf("list deliveries: %w", err)
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, apperror.Internalf("count deliveries: %w", err)
	}

	if records == nil {
		records = []Record{}
	}

	return &ListResponse{
		Deliveries: records,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}
