// Package seeder loads a directory dataset (activities, buildings, companies)
// through the services, so every row passes the same validation as API writes.
package seeder

import (
	"context"

	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/service/building"
	"github.com/heartmarshall/company-directory/internal/service/company"
	"github.com/heartmarshall/company-directory/internal/service/taxonomy"
)

// ActivityStore is implemented by taxonomy.Service.
type ActivityStore interface {
	Create(ctx context.Context, input taxonomy.CreateInput) (*domain.Activity, error)
	FindByName(ctx context.Context, name string) (*domain.Activity, error)
}

// BuildingStore is implemented by building.Service.
type BuildingStore interface {
	Create(ctx context.Context, input building.CreateInput) (*domain.Building, error)
	GetByAddress(ctx context.Context, address string) (*domain.Building, error)
}

// CompanyStore is implemented by company.Service.
type CompanyStore interface {
	Create(ctx context.Context, input company.CreateInput) (*domain.Company, error)
	GetByBuilding(ctx context.Context, buildingID int64) ([]domain.Company, error)
}
