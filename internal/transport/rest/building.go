package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/service/building"
	"github.com/heartmarshall/company-directory/internal/transport/validate"
	"github.com/heartmarshall/company-directory/pkg/nullable"
)

type buildingService interface {
	crudService[domain.Building, building.CreateInput, building.UpdateInput]
	GetByAddress(ctx context.Context, address string) (*domain.Building, error)
}

// BuildingHandler serves /buildings.
type BuildingHandler struct {
	crud[domain.Building, building.CreateInput, building.UpdateInput, buildingResponse]
	svc buildingService
}

// NewBuildingHandler creates a BuildingHandler.
func NewBuildingHandler(svc buildingService, v *validate.Validator, limits config.SearchConfig, logger *slog.Logger) *BuildingHandler {
	return &BuildingHandler{
		crud: crud[domain.Building, building.CreateInput, building.UpdateInput, buildingResponse]{
			svc:          svc,
			log:          logger.With("handler", "building"),
			pager:        newPager(limits),
			decodeCreate: decodeCreateBuilding(v),
			decodeUpdate: decodeUpdateBuilding,
			present:      mapSlice(toBuildingResponse),
		},
		svc: svc,
	}
}

type createBuildingRequest struct {
	Address   string   `json:"address"   validate:"notblank,max=500"`
	Latitude  *float64 `json:"latitude"  validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type updateBuildingRequest struct {
	Address   nullable.Field[string]  `json:"address"`
	Latitude  nullable.Field[float64] `json:"latitude"`
	Longitude nullable.Field[float64] `json:"longitude"`
}

type buildingResponse struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func toBuildingResponse(b domain.Building) buildingResponse {
	return buildingResponse{
		ID:        b.ID,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func decodeCreateBuilding(v *validate.Validator) func(http.ResponseWriter, *http.Request) (building.CreateInput, error) {
	return func(w http.ResponseWriter, r *http.Request) (building.CreateInput, error) {
		req, err := decodeValid[createBuildingRequest](w, r, v)
		if err != nil {
			return building.CreateInput{}, err
		}
		return building.CreateInput{
			Address:   req.Address,
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}, nil
	}
}

func decodeUpdateBuilding(w http.ResponseWriter, r *http.Request, id int64) (building.UpdateInput, error) {
	var req updateBuildingRequest
	if err := decodeBody(w, r, &req); err != nil {
		return building.UpdateInput{}, err
	}

	var errs []domain.FieldError
	if req.Address.Null {
		errs = append(errs, domain.FieldError{Field: "address", Message: "must not be null"})
	}
	if req.Latitude.Null {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must not be null"})
	}
	if req.Longitude.Null {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must not be null"})
	}
	if len(errs) > 0 {
		return building.UpdateInput{}, domain.NewValidationErrors(errs)
	}

	return building.UpdateInput{
		ID:        id,
		Address:   req.Address.Ptr(),
		Latitude:  req.Latitude.Ptr(),
		Longitude: req.Longitude.Ptr(),
	}, nil
}

// SearchByAddress handles GET /buildings/search/address?address=X.
func (h *BuildingHandler) SearchByAddress(w http.ResponseWriter, r *http.Request) {
	address, err := queryString(r, "address")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.GetByAddress(r.Context(), address)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBuildingResponse(*b))
}
