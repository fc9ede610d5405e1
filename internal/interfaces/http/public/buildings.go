package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/interfaces/http/common"
	publicapp "github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
)

func (h *Handler) buildingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		page, limit := pagingParams(r)
		result, err := h.buildingQueries.List(ctx, publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("建築物一覧の取得に失敗しました: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "建築物一覧の取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildingListResponse{
			Items: buildBuildingResponses(result.Items),
			Page:  page,
			Limit: limit,
			Total: result.Total,
		})
	}
}

func (h *Handler) buildingDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "建築物IDの形式が不正です")
			return
		}

		building, err := h.buildingQueries.Detail(ctx, id)
		if err != nil {
			if publicapp.IsNotFound(err) {
				common.WriteError(h.logger, w, http.StatusNotFound, "建築物が見つかりません")
				return
			}
			h.logger.Printf("建築物詳細の取得に失敗しました: id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "建築物情報の取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBuildingResponse(*building))
	}
}

func (h *Handler) buildingSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.SearchFilters{
			Query:       query.Get("q"),
			Prefectures: common.CanonicalPrefectures(query["prefecture"]),
			HasPhotos:   common.ParseBool(query.Get("hasPhotos")),
			HasVideos:   common.ParseBool(query.Get("hasVideos")),
		}

		lat, latOK := common.ParseFloat(query.Get("lat"))
		lng, lngOK := common.ParseFloat(query.Get("lng"))
		radius, radiusOK := common.ParseFloat(query.Get("radius"))
		if latOK && lngOK && radiusOK && radius > 0 {
			if radius > common.MaxNearbyRadiusKm {
				radius = common.MaxNearbyRadiusKm
			}
			filter.CurrentLocation = &publicapp.GeoPoint{Lat: lat, Lng: lng}
			filter.RadiusKm = radius
		}

		page, limit := pagingParams(r)
		result, err := h.buildingQueries.Search(ctx, filter, publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("建築物検索に失敗しました: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "建築物の検索に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildingListResponse{
			Items: buildBuildingResponses(result.Items),
			Page:  page,
			Limit: limit,
			Total: result.Total,
		})
	}
}

func (h *Handler) buildingNearbyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		lat, latOK := common.ParseFloat(query.Get("lat"))
		lng, lngOK := common.ParseFloat(query.Get("lng"))
		if !latOK || !lngOK {
			common.WriteError(h.logger, w, http.StatusBadRequest, "lat / lng を指定してください")
			return
		}

		radius, _ := common.ParseFloat(query.Get("radius"))
		if radius <= 0 {
			radius = 5
		}
		if radius > common.MaxNearbyRadiusKm {
			radius = common.MaxNearbyRadiusKm
		}

		items, err := h.buildingQueries.Nearby(ctx, lat, lng, radius)
		if err != nil {
			h.logger.Printf("近傍検索に失敗しました: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "近くの建築物の取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, nearbyResponse{
			Items: buildBuildingResponses(items),
		})
	}
}

// pagingParams はページングクエリを既定値・上限つきで読み取る。
func pagingParams(r *http.Request) (page, limit int) {
	query := r.URL.Query()
	page, _ = common.ParsePositiveInt(query.Get("page"), 1)
	limit, _ = common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)
	if limit > common.MaxPageLimit {
		limit = common.MaxPageLimit
	}
	return page, limit
}

func trimmedQueryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
