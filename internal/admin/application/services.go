package application

import (
	"context"

	admindomain "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/domain"
)

// BuildingRepository abstracts admin write access to buildings.
// BuildingRepository は管理コンテキストで建築物を書き込むためのポート。
type BuildingRepository interface {
	Create(ctx context.Context, building *admindomain.Building) error
	Update(ctx context.Context, building *admindomain.Building) error
	FindByID(ctx context.Context, id int64) (*admindomain.Building, error)
}

// UpsertBuildingCommand captures admin input for create/update.
type UpsertBuildingCommand struct {
	Title               string
	TitleEn             string
	ThumbnailURL        admindomain.URL
	YoutubeURL          admindomain.URL
	CompletionYears     admindomain.Year
	ParentBuildingTypes []string
	BuildingTypes       []string
	ParentStructures    []string
	Structures          []string
	Prefecture          admindomain.Prefecture
	Areas               string
	Location            string
	Lat                 float64
	Lng                 float64
	Architects          []admindomain.ArchitectRef
}

// BuildingService describes admin building use-cases.
type BuildingService interface {
	Create(ctx context.Context, cmd UpsertBuildingCommand) (*admindomain.Building, error)
	Update(ctx context.Context, id int64, cmd UpsertBuildingCommand) (*admindomain.Building, error)
	Detail(ctx context.Context, id int64) (*admindomain.Building, error)
}
