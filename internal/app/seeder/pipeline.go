package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/service/building"
	"github.com/heartmarshall/company-directory/internal/service/company"
	"github.com/heartmarshall/company-directory/internal/service/taxonomy"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"activities", "buildings", "companies"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the 3-phase seeding process. Rows that already exist
// (same activity name, same address, same company name in the building) are
// skipped, so the pipeline can be re-run.
type Pipeline struct {
	log        *slog.Logger
	activities ActivityStore
	buildings  BuildingStore
	companies  CompanyStore
	cfg        Config
	results    map[string]PhaseResult

	activityIDs map[string]int64
	buildingIDs map[string]int64
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, activities ActivityStore, buildings BuildingStore, companies CompanyStore, cfg Config) *Pipeline {
	return &Pipeline{
		log:         log,
		activities:  activities,
		buildings:   buildings,
		companies:   companies,
		cfg:         cfg,
		results:     make(map[string]PhaseResult),
		activityIDs: make(map[string]int64),
		buildingIDs: make(map[string]int64),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline over ds. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, ds *Dataset, phases []string) error {
	if ds == nil {
		return errors.New("seeder: nil dataset")
	}

	toRun := allPhases
	if len(phases) > 0 {
		toRun = nil
		for _, ph := range allPhases {
			if slices.Contains(phases, ph) {
				toRun = append(toRun, ph)
			}
		}
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "activities":
			result = p.runActivities(ctx, ds.Activities)
		case "buildings":
			result = p.runBuildings(ctx, ds.Buildings)
		case "companies":
			result = p.runCompanies(ctx, ds.Companies)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runActivities inserts activities in list order; a parent must precede its children.
func (p *Pipeline) runActivities(ctx context.Context, rows []ActivityRow) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(rows)}
	}

	var result PhaseResult
	for _, row := range rows {
		id, found, err := p.lookupActivity(ctx, row.Name)
		if err != nil {
			return PhaseResult{Err: err}
		}
		if found {
			p.activityIDs[row.Name] = id
			result.Skipped++
			continue
		}

		input := taxonomy.CreateInput{Name: row.Name}
		if row.Parent != "" {
			parentID, ok, err := p.lookupActivity(ctx, row.Parent)
			if err != nil {
				return PhaseResult{Err: err}
			}
			if !ok {
				p.log.Warn("parent activity missing",
					slog.String("activity", row.Name),
					slog.String("parent", row.Parent),
				)
				result.Errors++
				continue
			}
			input.ParentID = &parentID
		}

		a, err := p.activities.Create(ctx, input)
		if err != nil {
			p.log.Warn("create activity", slog.String("activity", row.Name), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		p.activityIDs[row.Name] = a.ID
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runBuildings(ctx context.Context, rows []BuildingRow) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(rows)}
	}

	var result PhaseResult
	for _, row := range rows {
		_, found, err := p.lookupBuilding(ctx, row.Address)
		if err != nil {
			return PhaseResult{Err: err}
		}
		if found {
			result.Skipped++
			continue
		}

		b, err := p.buildings.Create(ctx, building.CreateInput{
			Address:   row.Address,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
		if err != nil {
			p.log.Warn("create building", slog.String("address", row.Address), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		p.buildingIDs[row.Address] = b.ID
		result.Inserted++
	}
	return result
}

// runCompanies inserts companies. Unknown activity names are dropped with a
// warning; an unknown building fails the row.
func (p *Pipeline) runCompanies(ctx context.Context, rows []CompanyRow) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(rows)}
	}

	var result PhaseResult
	for _, row := range rows {
		buildingID, ok, err := p.lookupBuilding(ctx, row.Building)
		if err != nil {
			return PhaseResult{Err: err}
		}
		if !ok {
			p.log.Warn("building missing", slog.String("company", row.Name), slog.String("building", row.Building))
			result.Errors++
			continue
		}

		existing, err := p.companies.GetByBuilding(ctx, buildingID)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("list companies in building %d: %w", buildingID, err)}
		}
		if slices.ContainsFunc(existing, func(c domain.Company) bool { return c.Name == row.Name }) {
			result.Skipped++
			continue
		}

		activityIDs := make([]int64, 0, len(row.Activities))
		for _, name := range row.Activities {
			id, ok, err := p.lookupActivity(ctx, name)
			if err != nil {
				return PhaseResult{Err: err}
			}
			if !ok {
				p.log.Warn("activity missing", slog.String("company", row.Name), slog.String("activity", name))
				continue
			}
			activityIDs = append(activityIDs, id)
		}

		_, err = p.companies.Create(ctx, company.CreateInput{
			Name:         row.Name,
			BuildingID:   buildingID,
			PhoneNumbers: row.Phones,
			ActivityIDs:  activityIDs,
		})
		if err != nil {
			p.log.Warn("create company", slog.String("company", row.Name), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++
	}
	return result
}

// lookupActivity resolves an activity name from the run cache, then the store.
func (p *Pipeline) lookupActivity(ctx context.Context, name string) (int64, bool, error) {
	if id, ok := p.activityIDs[name]; ok {
		return id, true, nil
	}
	a, err := p.activities.FindByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("find activity %q: %w", name, err)
	}
	p.activityIDs[name] = a.ID
	return a.ID, true, nil
}

// lookupBuilding resolves an address from the run cache, then the store.
func (p *Pipeline) lookupBuilding(ctx context.Context, address string) (int64, bool, error) {
	if id, ok := p.buildingIDs[address]; ok {
		return id, true, nil
	}
	b, err := p.buildings.GetByAddress(ctx, address)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("find building %q: %w", address, err)
	}
	p.buildingIDs[address] = b.ID
	return b.ID, true, nil
}
