package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/domain"
	"github.com/heartmarshall/company-directory/internal/service/taxonomy"
	"github.com/heartmarshall/company-directory/internal/transport/validate"
	"github.com/heartmarshall/company-directory/pkg/nullable"
)

type activityService interface {
	crudService[domain.Activity, taxonomy.CreateInput, taxonomy.UpdateInput]
	FindByName(ctx context.Context, name string) (*domain.Activity, error)
	BuildTree(ctx context.Context, maxDepth int) ([]domain.ActivityNode, error)
	MaxDepth() int
}

// ActivityHandler serves /activities.
type ActivityHandler struct {
	crud[domain.Activity, taxonomy.CreateInput, taxonomy.UpdateInput, activityResponse]
	svc activityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, v *validate.Validator, limits config.SearchConfig, logger *slog.Logger) *ActivityHandler {
	log := logger.With("handler", "activity")
	return &ActivityHandler{
		crud: crud[domain.Activity, taxonomy.CreateInput, taxonomy.UpdateInput, activityResponse]{
			svc:          svc,
			log:          log,
			pager:        newPager(limits),
			decodeCreate: decodeCreateActivity(v),
			decodeUpdate: decodeUpdateActivity,
			present:      mapSlice(toActivityResponse),
		},
		svc: svc,
	}
}

type createActivityRequest struct {
	Name     string `json:"name"      validate:"notblank,max=255"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

type updateActivityRequest struct {
	Name     nullable.Field[string] `json:"name"`
	ParentID nullable.Field[int64]  `json:"parent_id"`
}

type activityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

type activityNodeResponse struct {
	ID       int64                  `json:"id"`
	Name     string                 `json:"name"`
	ParentID *int64                 `json:"parent_id"`
	Children []activityNodeResponse `json:"children"`
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{ID: a.ID, Name: a.Name, ParentID: a.ParentID}
}

func toActivityNodes(nodes []domain.ActivityNode) []activityNodeResponse {
	out := make([]activityNodeResponse, len(nodes))
	for i, n := range nodes {
		out[i] = activityNodeResponse{
			ID:       n.ID,
			Name:     n.Name,
			ParentID: n.ParentID,
			Children: toActivityNodes(n.Children),
		}
	}
	return out
}

func decodeCreateActivity(v *validate.Validator) func(http.ResponseWriter, *http.Request) (taxonomy.CreateInput, error) {
	return func(w http.ResponseWriter, r *http.Request) (taxonomy.CreateInput, error) {
		req, err := decodeValid[createActivityRequest](w, r, v)
		if err != nil {
			return taxonomy.CreateInput{}, err
		}
		return taxonomy.CreateInput{Name: req.Name, ParentID: req.ParentID}, nil
	}
}

func decodeUpdateActivity(w http.ResponseWriter, r *http.Request, id int64) (taxonomy.UpdateInput, error) {
	var req updateActivityRequest
	if err := decodeBody(w, r, &req); err != nil {
		return taxonomy.UpdateInput{}, err
	}
	if req.Name.Null {
		return taxonomy.UpdateInput{}, domain.NewValidationError("name", "must not be null")
	}
	return taxonomy.UpdateInput{
		ID:        id,
		Name:      req.Name.Ptr(),
		SetParent: req.ParentID.Present,
		ParentID:  req.ParentID.Ptr(),
	}, nil
}

// Tree handles GET /activities/tree?max_depth=N.
func (h *ActivityHandler) Tree(w http.ResponseWriter, r *http.Request) {
	depth := h.svc.MaxDepth()
	if raw := r.URL.Query().Get("max_depth"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("max_depth", "must be an integer"))
			return
		}
		depth = v
	}

	nodes, err := h.svc.BuildTree(r.Context(), depth)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityNodes(nodes))
}

// SearchByName handles GET /activities/search/name?name=X.
func (h *ActivityHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.FindByName(r.Context(), name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*a))
}
