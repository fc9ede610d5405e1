package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/application"
	admindomain "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/domain"
	"github.com/kenchikumap/kenchiku-map-services/api/internal/interfaces/http/common"
)

const maxTitleRunes = 200

func (h *Handler) buildingCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminBuildingRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxAdminRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "リクエストの形式が不正です")
			return
		}

		cmd, err := buildUpsertCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		building, err := h.buildingService.Create(ctx, cmd)
		if err != nil {
			h.logger.Printf("admin building create failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "建築物の登録に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, adminBuildingCreateResponse{
			Building: adminBuildingDomainToResponse(*building),
			Created:  true,
		})
	}
}

func (h *Handler) buildingUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "建築物IDの形式が不正です")
			return
		}

		var req adminBuildingRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxAdminRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "リクエストの形式が不正です")
			return
		}

		cmd, err := buildUpsertCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		building, err := h.buildingService.Update(ctx, id, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "建築物が見つかりません")
				return
			}
			h.logger.Printf("admin building update failed id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "建築物の更新に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminBuildingDomainToResponse(*building))
	}
}

func (h *Handler) buildingDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := common.ParseID(chi.URLParam(r, "id"))
		if !ok {
			common.WriteError(h.logger, w, http.StatusBadRequest, "建築物IDの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		building, err := h.buildingService.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "建築物が見つかりません")
				return
			}
			h.logger.Printf("admin building detail fetch failed id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "建築物情報の取得に失敗しました")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminBuildingDomainToResponse(*building))
	}
}

// buildUpsertCommand はリクエストを検証済みコマンドへ変換する。
func buildUpsertCommand(req adminBuildingRequest) (adminapp.UpsertBuildingCommand, error) {
	var cmd adminapp.UpsertBuildingCommand

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return cmd, errors.New("建築物名を入力してください")
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		return cmd, fmt.Errorf("建築物名は%d文字以内で入力してください", maxTitleRunes)
	}

	prefecture, err := admindomain.NewPrefecture(common.CanonicalPrefecture(req.Prefecture))
	if err != nil {
		return cmd, err
	}

	thumbnailURL, err := admindomain.NewURL(req.ThumbnailURL)
	if err != nil {
		return cmd, err
	}
	youtubeURL, err := admindomain.NewURL(req.YoutubeURL)
	if err != nil {
		return cmd, err
	}

	completionYears, err := admindomain.NewYear(req.CompletionYears)
	if err != nil {
		return cmd, err
	}

	if err := admindomain.ValidateCoordinates(req.Lat, req.Lng); err != nil {
		return cmd, err
	}

	architects := make([]admindomain.ArchitectRef, 0, len(req.Architects))
	for i, a := range req.Architects {
		nameJa := strings.TrimSpace(a.NameJa)
		if nameJa == "" {
			return cmd, fmt.Errorf("建築家名（日本語）を入力してください: %d件目", i+1)
		}
		architects = append(architects, admindomain.ArchitectRef{
			ID:         a.ID,
			NameJa:     nameJa,
			NameEn:     strings.TrimSpace(a.NameEn),
			OrderIndex: i,
		})
	}

	cmd = adminapp.UpsertBuildingCommand{
		Title:               title,
		TitleEn:             strings.TrimSpace(req.TitleEn),
		ThumbnailURL:        thumbnailURL,
		YoutubeURL:          youtubeURL,
		CompletionYears:     completionYears,
		ParentBuildingTypes: trimList(req.ParentBuildingTypes),
		BuildingTypes:       trimList(req.BuildingTypes),
		ParentStructures:    trimList(req.ParentStructures),
		Structures:          trimList(req.Structures),
		Prefecture:          prefecture,
		Areas:               strings.TrimSpace(req.Area),
		Location:            strings.TrimSpace(req.Location),
		Lat:                 req.Lat,
		Lng:                 req.Lng,
		Architects:          architects,
	}
	return cmd, nil
}

func trimList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}
	return result
}
