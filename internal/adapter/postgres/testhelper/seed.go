package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/company-directory/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActivity inserts an activity. The name gets a unique suffix.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, name string, parentID *int64) domain.Activity {
	t.Helper()

	a := domain.Activity{Name: name + " " + uniqueSuffix(), ParentID: parentID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO activities (name, parent_id) VALUES ($1, $2) RETURNING id`,
		a.Name, a.ParentID,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}
	return a
}

// SeedBuilding inserts a building at the given coordinates with a unique address.
func SeedBuilding(t *testing.T, pool *pgxpool.Pool, lat, lng float64) domain.Building {
	t.Helper()

	b := domain.Building{Address: "ул. Тестовая, д. " + uniqueSuffix(), Latitude: lat, Longitude: lng}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO buildings (address, latitude, longitude) VALUES ($1, $2, $3) RETURNING id`,
		b.Address, b.Latitude, b.Longitude,
	).Scan(&b.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedBuilding: %v", err)
	}
	return b
}

// SeedRandomBuilding inserts a building at coordinates far from any fixture city,
// so geo queries around it only see rows of the calling test.
func SeedRandomBuilding(t *testing.T, pool *pgxpool.Pool) domain.Building {
	t.Helper()
	return SeedBuilding(t, pool, -60+rand.Float64()*10, -170+rand.Float64()*10)
}

// SeedCompany inserts a company with phones and activity links.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, buildingID int64, phones []string, activityIDs ...int64) domain.Company {
	t.Helper()
	ctx := context.Background()

	c := domain.Company{Name: "ООО Тест " + uniqueSuffix(), BuildingID: buildingID}
	err := pool.QueryRow(ctx,
		`INSERT INTO companies (name, building_id) VALUES ($1, $2) RETURNING id`,
		c.Name, c.BuildingID,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany insert company: %v", err)
	}

	for _, p := range phones {
		if _, err := pool.Exec(ctx,
			`INSERT INTO company_phones (company_id, phone_number) VALUES ($1, $2)`, c.ID, p,
		); err != nil {
			t.Fatalf("testhelper: SeedCompany insert phone: %v", err)
		}
	}

	for _, id := range activityIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO company_activity (company_id, activity_id) VALUES ($1, $2)`, c.ID, id,
		); err != nil {
			t.Fatalf("testhelper: SeedCompany link activity: %v", err)
		}
	}

	return c
}
