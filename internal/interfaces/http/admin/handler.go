package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger          *log.Logger
	buildingService adminapp.BuildingService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger          *log.Logger
	BuildingService adminapp.BuildingService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:          cfg.Logger,
		buildingService: cfg.BuildingService,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/buildings", h.buildingCreateHandler())
	r.Put("/buildings/{id}", h.buildingUpdateHandler())
	r.Get("/buildings/{id}", h.buildingDetailHandler())
}
