package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/service/company"
	"github.com/heartmarshall/company-directory/internal/transport/rest/dataloader"
	"github.com/heartmarshall/company-directory/internal/transport/validate"
	"github.com/heartmarshall/company-directory/pkg/nullable"
)

type companyService interface {
	crudService[domain.Company, company.CreateInput, company.UpdateInput]
	GetByBuilding(ctx context.Context, buildingID int64) ([]domain.Company, error)
	GetByActivity(ctx context.Context, activityID int64) ([]domain.Company, error)
	SearchByName(ctx context.Context, substring string) ([]domain.Company, error)
	SearchByActivityName(ctx context.Context, substring string) ([]domain.Company, error)
	GetInRadius(ctx context.Context, q company.RadiusQuery) ([]domain.Company, error)
	GetInRectangle(ctx context.Context, q company.RectangleQuery) ([]domain.Company, error)
}

// CompanyHandler serves /companies. Relations in responses are loaded
// through the per-request dataloaders.
type CompanyHandler struct {
	crud[domain.Company, company.CreateInput, company.UpdateInput, companyResponse]
	svc companyService
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc companyService, v *validate.Validator, limits config.SearchConfig, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		crud: crud[domain.Company, company.CreateInput, company.UpdateInput, companyResponse]{
			svc:          svc,
			log:          logger.With("handler", "company"),
			pager:        newPager(limits),
			decodeCreate: decodeCreateCompany(v),
			decodeUpdate: decodeUpdateCompany,
			present:      presentCompanies,
		},
		svc: svc,
	}
}

type createCompanyRequest struct {
	Name         string   `json:"name"          validate:"notblank,max=255"`
	BuildingID   int64    `json:"building_id"   validate:"gt=0"`
	PhoneNumbers []string `json:"phone_numbers" validate:"max=50,dive,notblank,max=50"`
	ActivityIDs  []int64  `json:"activity_ids"  validate:"max=100,dive,gt=0"`
}

type updateCompanyRequest struct {
	Name         nullable.Field[string]   `json:"name"`
	BuildingID   nullable.Field[int64]    `json:"building_id"`
	PhoneNumbers nullable.Field[[]string] `json:"phone_numbers"`
	ActivityIDs  nullable.Field[[]int64]  `json:"activity_ids"`
}

type phoneResponse struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

type companyResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	BuildingID int64              `json:"building_id"`
	Building   *buildingResponse  `json:"building"`
	Phones     []phoneResponse    `json:"phones"`
	Activities []activityResponse `json:"activities"`
}

func decodeCreateCompany(v *validate.Validator) func(http.ResponseWriter, *http.Request) (company.CreateInput, error) {
	return func(w http.ResponseWriter, r *http.Request) (company.CreateInput, error) {
		req, err := decodeValid[createCompanyRequest](w, r, v)
		if err != nil {
			return company.CreateInput{}, err
		}
		return company.CreateInput{
			Name:         req.Name,
			BuildingID:   req.BuildingID,
			PhoneNumbers: req.PhoneNumbers,
			ActivityIDs:  req.ActivityIDs,
		}, nil
	}
}

// decodeUpdateCompany maps a partial body. A null or empty list clears the
// collection; null scalars are rejected.
func decodeUpdateCompany(w http.ResponseWriter, r *http.Request, id int64) (company.UpdateInput, error) {
	var req updateCompanyRequest
	if err := decodeBody(w, r, &req); err != nil {
		return company.UpdateInput{}, err
	}

	var errs []domain.FieldError
	if req.Name.Null {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be null"})
	}
	if req.BuildingID.Null {
		errs = append(errs, domain.FieldError{Field: "building_id", Message: "must not be null"})
	}
	if len(errs) > 0 {
		return company.UpdateInput{}, domain.NewValidationErrors(errs)
	}

	return company.UpdateInput{
		ID:           id,
		Name:         req.Name.Ptr(),
		BuildingID:   req.BuildingID.Ptr(),
		PhoneNumbers: req.PhoneNumbers.OrZero(),
		ActivityIDs:  req.ActivityIDs.OrZero(),
	}, nil
}

// presentCompanies hydrates building, phones and activities for every
// company. Each relation costs one batched query regardless of len(companies).
func presentCompanies(ctx context.Context, companies []domain.Company) ([]companyResponse, error) {
	if len(companies) == 0 {
		return []companyResponse{}, nil
	}

	loaders := dataloader.FromContext(ctx)

	ids := make([]int64, len(companies))
	buildingIDs := make([]int64, len(companies))
	for i, c := range companies {
		ids[i] = c.ID
		buildingIDs[i] = c.BuildingID
	}

	var (
		buildings  []*domain.Building
		phones     [][]domain.Phone
		activities [][]domain.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, errs := loaders.BuildingByID.LoadMany(gctx, buildingIDs)()
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("load buildings: %w", err)
		}
		buildings = res
		return nil
	})
	g.Go(func() error {
		res, errs := loaders.PhonesByCompanyID.LoadMany(gctx, ids)()
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("load phones: %w", err)
		}
		phones = res
		return nil
	})
	g.Go(func() error {
		res, errs := loaders.ActivitiesByCompanyID.LoadMany(gctx, ids)()
		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("load activities: %w", err)
		}
		activities = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]companyResponse, len(companies))
	for i, c := range companies {
		resp := companyResponse{
			ID:         c.ID,
			Name:       c.Name,
			BuildingID: c.BuildingID,
			Phones:     make([]phoneResponse, len(phones[i])),
			Activities: make([]activityResponse, len(activities[i])),
		}
		if b := buildings[i]; b != nil {
			br := toBuildingResponse(*b)
			resp.Building = &br
		}
		for j, p := range phones[i] {
			resp.Phones[j] = phoneResponse{ID: p.ID, PhoneNumber: p.Number}
		}
		for j, a := range activities[i] {
			resp.Activities[j] = toActivityResponse(a)
		}
		out[i] = resp
	}
	return out, nil
}

func (h *CompanyHandler) writeCompanies(w http.ResponseWriter, r *http.Request, companies []domain.Company, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeMany(w, r, companies)
}

// ByBuilding handles GET /companies/building/{building_id}.
func (h *CompanyHandler) ByBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "building_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	companies, err := h.svc.GetByBuilding(r.Context(), id)
	h.writeCompanies(w, r, companies, err)
}

// ByActivity handles GET /companies/activity/{activity_id}.
func (h *CompanyHandler) ByActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "activity_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	companies, err := h.svc.GetByActivity(r.Context(), id)
	h.writeCompanies(w, r, companies, err)
}

// SearchByName handles GET /companies/search/name?name=X.
func (h *CompanyHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	companies, err := h.svc.SearchByName(r.Context(), name)
	h.writeCompanies(w, r, companies, err)
}

// SearchByActivityName handles GET /companies/search/activity?activity_name=X.
func (h *CompanyHandler) SearchByActivityName(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "activity_name")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	companies, err := h.svc.SearchByActivityName(r.Context(), name)
	h.writeCompanies(w, r, companies, err)
}

// InRadius handles GET /companies/search/location/radius?lat&lng&radius.
func (h *CompanyHandler) InRadius(w http.ResponseWriter, r *http.Request) {
	v, err := queryFloats(r, "lat", "lng", "radius")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	companies, err := h.svc.GetInRadius(r.Context(), company.RadiusQuery{
		Latitude:  v[0],
		Longitude: v[1],
		RadiusKm:  v[2],
	})
	h.writeCompanies(w, r, companies, err)
}

// InRectangle handles GET /companies/search/location/rectangle?lat_min&lat_max&lng_min&lng_max.
func (h *CompanyHandler) InRectangle(w http.ResponseWriter, r *http.Request) {
	v, err := queryFloats(r, "lat_min", "lat_max", "lng_min", "lng_max")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	companies, err := h.svc.GetInRectangle(r.Context(), company.RectangleQuery{
		LatMin: v[0],
		LatMax: v[1],
		LngMin: v[2],
		LngMax: v[3],
	})
	h.writeCompanies(w, r, companies, err)
}
