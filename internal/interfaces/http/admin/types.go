package admin

import (
	"time"

	admindomain "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/domain"
)

type adminBuildingRequest struct {
	Title               string                  `json:"title"`
	TitleEn             string                  `json:"titleEn"`
	ThumbnailURL        string                  `json:"thumbnailUrl"`
	YoutubeURL          string                  `json:"youtubeUrl"`
	CompletionYears     int                     `json:"completionYears"`
	ParentBuildingTypes []string                `json:"parentBuildingTypes"`
	BuildingTypes       []string                `json:"buildingTypes"`
	ParentStructures    []string                `json:"parentStructures"`
	Structures          []string                `json:"structures"`
	Prefecture          string                  `json:"prefecture"`
	Area                string                  `json:"area"`
	Location            string                  `json:"location"`
	Lat                 float64                 `json:"lat"`
	Lng                 float64                 `json:"lng"`
	Architects          []adminArchitectPayload `json:"architects"`
}

type adminArchitectPayload struct {
	ID     int64  `json:"id"`
	NameJa string `json:"nameJa"`
	NameEn string `json:"nameEn"`
}

type adminBuildingResponse struct {
	ID                  int64                   `json:"id"`
	UID                 string                  `json:"uid"`
	Title               string                  `json:"title"`
	TitleEn             string                  `json:"titleEn"`
	ThumbnailURL        string                  `json:"thumbnailUrl,omitempty"`
	YoutubeURL          string                  `json:"youtubeUrl,omitempty"`
	CompletionYears     int                     `json:"completionYears"`
	ParentBuildingTypes []string                `json:"parentBuildingTypes"`
	BuildingTypes       []string                `json:"buildingTypes"`
	ParentStructures    []string                `json:"parentStructures"`
	Structures          []string                `json:"structures"`
	Prefecture          string                  `json:"prefecture"`
	Area                string                  `json:"area,omitempty"`
	Location            string                  `json:"location"`
	Lat                 float64                 `json:"lat"`
	Lng                 float64                 `json:"lng"`
	Architects          []adminArchitectPayload `json:"architects"`
	Likes               int                     `json:"likes"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

type adminBuildingCreateResponse struct {
	Building adminBuildingResponse `json:"building"`
	Created  bool                  `json:"created"`
}

// adminBuildingDomainToResponse は管理集約を Admin UI 用レスポンスへ変換する。
func adminBuildingDomainToResponse(building admindomain.Building) adminBuildingResponse {
	architects := make([]adminArchitectPayload, 0, len(building.Architects))
	for _, ref := range building.Architects {
		architects = append(architects, adminArchitectPayload{
			ID:     ref.ID,
			NameJa: ref.NameJa,
			NameEn: ref.NameEn,
		})
	}

	return adminBuildingResponse{
		ID:                  building.ID,
		UID:                 building.UID,
		Title:               building.Title,
		TitleEn:             building.TitleEn,
		ThumbnailURL:        building.ThumbnailURL.String(),
		YoutubeURL:          building.YoutubeURL.String(),
		CompletionYears:     building.CompletionYears.Int(),
		ParentBuildingTypes: append([]string{}, building.ParentBuildingTypes...),
		BuildingTypes:       append([]string{}, building.BuildingTypes...),
		ParentStructures:    append([]string{}, building.ParentStructures...),
		Structures:          append([]string{}, building.Structures...),
		Prefecture:          building.Prefecture.String(),
		Area:                building.Areas,
		Location:            building.Location,
		Lat:                 building.Lat,
		Lng:                 building.Lng,
		Architects:          architects,
		Likes:               building.Likes,
		CreatedAt:           building.CreatedAt,
		UpdatedAt:           building.UpdatedAt,
	}
}
