package public

import (
	"context"
	"net/http"
	"time"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/interfaces/http/common"
)

func (h *Handler) suggestionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		keyword := trimmedQueryParam(r, "q")
		items := h.suggestions.Suggest(ctx, keyword)
		common.WriteJSON(h.logger, w, http.StatusOK, suggestionResponse{Items: items})
	}
}

func (h *Handler) popularHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		items := h.suggestions.Popular(ctx)
		common.WriteJSON(h.logger, w, http.StatusOK, suggestionResponse{Items: items})
	}
}
