// Package building manages buildings and feeds the geo filters.
package building

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/company-directory/internal/domain"
)

type buildingRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Building, error)
	GetByAddress(ctx context.Context, address string) (*domain.Building, error)
	List(ctx context.Context, page domain.Page) ([]domain.Building, error)
	ListAll(ctx context.Context) ([]domain.Building, error)
	Create(ctx context.Context, b domain.Building) (*domain.Building, error)
	Update(ctx context.Context, b domain.Building) (*domain.Building, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides building management.
type Service struct {
	buildings buildingRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new building service.
func NewService(log *slog.Logger, buildings buildingRepo, tx txManager) *Service {
	return &Service{
		buildings: buildings,
		tx:        tx,
		log:       log.With("service", "building"),
	}
}
