package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/interfaces/http/common"
	publicapp "github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
)

func (h *Handler) buildingLikeHandler() http.HandlerFunc {
	return h.likeHandler(publicapp.LikeKindBuilding, "建築物")
}

func (h *Handler) photoLikeHandler() http.HandlerFunc {
	return h.likeHandler(publicapp.LikeKindPhoto, "写真")
}

// likeHandler はいいね加算の共通ハンドラ。加算はリモート専用の書き込みなので、
// リモート無効時は 503 を返しローカルデータへは落とさない。
func (h *Handler) likeHandler(kind publicapp.LikeKind, label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, label+"IDの形式が不正です")
			return
		}

		likes, err := h.likeCommands.IncrementLikes(ctx, kind, id)
		if err != nil {
			var transport *publicapp.TransportError
			if errors.As(err, &transport) && transport.Status == http.StatusServiceUnavailable {
				common.WriteError(h.logger, w, http.StatusServiceUnavailable, transport.Message)
				return
			}
			if publicapp.IsNotFound(err) {
				common.WriteError(h.logger, w, http.StatusNotFound, label+"が見つかりません")
				return
			}
			h.logger.Printf("いいねの記録に失敗しました: kind=%s id=%d err=%v", kind, id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "いいねの記録に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, likeResponse{Likes: likes})
	}
}
