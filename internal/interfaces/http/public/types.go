package public

import (
	"time"

	publicdomain "github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

type buildingResponse struct {
	ID                  int64              `json:"id"`
	UID                 string             `json:"uid"`
	Title               string             `json:"title"`
	TitleEn             string             `json:"titleEn"`
	ThumbnailURL        string             `json:"thumbnailUrl,omitempty"`
	YoutubeURL          string             `json:"youtubeUrl,omitempty"`
	CompletionYears     int                `json:"completionYears"`
	ParentBuildingTypes []string           `json:"parentBuildingTypes"`
	BuildingTypes       []string           `json:"buildingTypes"`
	ParentStructures    []string           `json:"parentStructures"`
	Structures          []string           `json:"structures"`
	Prefecture          string             `json:"prefecture"`
	Area                string             `json:"area,omitempty"`
	Location            string             `json:"location"`
	Lat                 float64            `json:"lat"`
	Lng                 float64            `json:"lng"`
	Architects          []architectPayload `json:"architects"`
	Photos              []photoPayload     `json:"photos"`
	Likes               int                `json:"likes"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

type architectPayload struct {
	ID       int64            `json:"id"`
	NameJa   string           `json:"nameJa"`
	NameEn   string           `json:"nameEn"`
	Websites []websitePayload `json:"websites"`
}

type websitePayload struct {
	ID    int64  `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

type photoPayload struct {
	ID           int64     `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
}

type buildingListResponse struct {
	Items []buildingResponse `json:"items"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int                `json:"total"`
}

type nearbyResponse struct {
	Items []buildingResponse `json:"items"`
}

type likeResponse struct {
	Likes int `json:"likes"`
}

type suggestionResponse struct {
	Items []string `json:"items"`
}

type availabilityResponse struct {
	State string `json:"state"`
}

// buildBuildingResponse は Building ドメインモデルを表示用 DTO に変換する。
func buildBuildingResponse(b publicdomain.Building) buildingResponse {
	architects := make([]architectPayload, 0, len(b.Architects))
	for _, a := range b.Architects {
		websites := make([]websitePayload, 0, len(a.Websites))
		for _, w := range a.Websites {
			websites = append(websites, websitePayload{ID: w.ID, URL: w.URL, Title: w.Title})
		}
		architects = append(architects, architectPayload{
			ID:       a.ID,
			NameJa:   a.NameJa,
			NameEn:   a.NameEn,
			Websites: websites,
		})
	}

	photos := make([]photoPayload, 0, len(b.Photos))
	for _, p := range b.Photos {
		photos = append(photos, photoPayload{
			ID:           p.ID,
			URL:          p.URL,
			ThumbnailURL: p.ThumbnailURL,
			Likes:        p.Likes,
			CreatedAt:    p.CreatedAt,
		})
	}

	return buildingResponse{
		ID:                  b.ID,
		UID:                 b.UID,
		Title:               b.Title,
		TitleEn:             b.TitleEn,
		ThumbnailURL:        b.ThumbnailURL,
		YoutubeURL:          b.YoutubeURL,
		CompletionYears:     b.CompletionYears,
		ParentBuildingTypes: append([]string{}, b.ParentBuildingTypes...),
		BuildingTypes:       append([]string{}, b.BuildingTypes...),
		ParentStructures:    append([]string{}, b.ParentStructures...),
		Structures:          append([]string{}, b.Structures...),
		Prefecture:          b.Prefectures,
		Area:                b.Areas,
		Location:            b.Location,
		Lat:                 b.Lat,
		Lng:                 b.Lng,
		Architects:          architects,
		Photos:              photos,
		Likes:               b.Likes,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func buildBuildingResponses(items []publicdomain.Building) []buildingResponse {
	result := make([]buildingResponse, 0, len(items))
	for _, b := range items {
		result = append(result, buildBuildingResponse(b))
	}
	return result
}
