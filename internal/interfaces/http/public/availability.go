package public

import (
	"context"
	"net/http"
	"time"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/interfaces/http/common"
)

func (h *Handler) availabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		state := h.toggle.Resolve(ctx)
		common.WriteJSON(h.logger, w, http.StatusOK, availabilityResponse{State: state.String()})
	}
}

func (h *Handler) availabilityRecheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		state := h.toggle.Recheck(ctx)
		h.logger.Printf("リモート接続の再判定を実行しました: state=%s", state)
		common.WriteJSON(h.logger, w, http.StatusOK, availabilityResponse{State: state.String()})
	}
}
