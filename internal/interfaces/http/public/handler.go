package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger          *log.Logger
	buildingQueries publicapp.BuildingQueryService
	likeCommands    publicapp.LikeCommandService
	suggestions     publicapp.SuggestionService
	toggle          *publicapp.AvailabilityToggle
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger          *log.Logger
	BuildingQueries publicapp.BuildingQueryService
	LikeCommands    publicapp.LikeCommandService
	Suggestions     publicapp.SuggestionService
	Toggle          *publicapp.AvailabilityToggle
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:          cfg.Logger,
		buildingQueries: cfg.BuildingQueries,
		likeCommands:    cfg.LikeCommands,
		suggestions:     cfg.Suggestions,
		toggle:          cfg.Toggle,
	}
}

// Register mounts all public routes onto the router.
// 静的パス（search / nearby）はパラメータパス（{id}）より先に解決される。
func (h *Handler) Register(r chi.Router) {
	r.Get("/buildings", h.buildingListHandler())
	r.Get("/buildings/search", h.buildingSearchHandler())
	r.Get("/buildings/nearby", h.buildingNearbyHandler())
	r.Get("/buildings/{id}", h.buildingDetailHandler())
	r.Post("/buildings/{id}/likes", h.buildingLikeHandler())
	r.Post("/photos/{id}/likes", h.photoLikeHandler())
	r.Get("/suggestions", h.suggestionHandler())
	r.Get("/suggestions/popular", h.popularHandler())
	r.Get("/availability", h.availabilityHandler())
	r.Post("/availability/recheck", h.availabilityRecheckHandler())
}
