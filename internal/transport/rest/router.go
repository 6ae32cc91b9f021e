package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/company-directory/internal/transport/rest/dataloader"
)

// PublicPaths are served without an API key.
var PublicPaths = []string{"/", "/live", "/ready", "/health", "/metrics"}

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Health   *HealthHandler
	Activity *ActivityHandler
	Building *BuildingHandler
	Company  *CompanyHandler
	Metrics  http.Handler
	Loaders  *dataloader.Repos
}

// NewRouter registers all routes. mws run after route matching, so they can
// read the matched route template.
func NewRouter(d RouterDeps, mws ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.Use(mws...)
	r.Use(mux.MiddlewareFunc(dataloader.Middleware(d.Loaders)))

	r.HandleFunc("/", root).Methods(http.MethodGet)
	r.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics).Methods(http.MethodGet)
	}

	// Static paths are registered before {id} routes; mux matches in order.
	a := d.Activity
	r.HandleFunc("/activities/tree", a.Tree).Methods(http.MethodGet)
	r.HandleFunc("/activities/search/name", a.SearchByName).Methods(http.MethodGet)
	r.HandleFunc("/activities", a.list).Methods(http.MethodGet)
	r.HandleFunc("/activities", a.create).Methods(http.MethodPost)
	r.HandleFunc("/activities/{id}", a.get).Methods(http.MethodGet)
	r.HandleFunc("/activities/{id}", a.update).Methods(http.MethodPut)
	r.HandleFunc("/activities/{id}", a.delete).Methods(http.MethodDelete)

	b := d.Building
	r.HandleFunc("/buildings/search/address", b.SearchByAddress).Methods(http.MethodGet)
	r.HandleFunc("/buildings", b.list).Methods(http.MethodGet)
	r.HandleFunc("/buildings", b.create).Methods(http.MethodPost)
	r.HandleFunc("/buildings/{id}", b.get).Methods(http.MethodGet)
	r.HandleFunc("/buildings/{id}", b.update).Methods(http.MethodPut)
	r.HandleFunc("/buildings/{id}", b.delete).Methods(http.MethodDelete)

	c := d.Company
	r.HandleFunc("/companies/building/{building_id}", c.ByBuilding).Methods(http.MethodGet)
	r.HandleFunc("/companies/activity/{activity_id}", c.ByActivity).Methods(http.MethodGet)
	r.HandleFunc("/companies/search/name", c.SearchByName).Methods(http.MethodGet)
	r.HandleFunc("/companies/search/activity", c.SearchByActivityName).Methods(http.MethodGet)
	r.HandleFunc("/companies/search/location/radius", c.InRadius).Methods(http.MethodGet)
	r.HandleFunc("/companies/search/location/rectangle", c.InRectangle).Methods(http.MethodGet)
	r.HandleFunc("/companies", c.list).Methods(http.MethodGet)
	r.HandleFunc("/companies", c.create).Methods(http.MethodPost)
	r.HandleFunc("/companies/{id}", c.get).Methods(http.MethodGet)
	r.HandleFunc("/companies/{id}", c.update).Methods(http.MethodPut)
	r.HandleFunc("/companies/{id}", c.delete).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Company Directory API"})
}
