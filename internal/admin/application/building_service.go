package application

import (
	"context"

	admindomain "github.com/kenchikumap/kenchiku-map-services/api/internal/admin/domain"
)

// buildingService implements BuildingService.
type buildingService struct {
	repo BuildingRepository
}

// NewBuildingService creates the admin building service.
func NewBuildingService(repo BuildingRepository) BuildingService {
	return &buildingService{repo: repo}
}

func (s *buildingService) Create(ctx context.Context, cmd UpsertBuildingCommand) (*admindomain.Building, error) {
	building := buildingFromCommand(0, cmd)
	if err := s.repo.Create(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *buildingService) Update(ctx context.Context, id int64, cmd UpsertBuildingCommand) (*admindomain.Building, error) {
	building := buildingFromCommand(id, cmd)
	if err := s.repo.Update(ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *buildingService) Detail(ctx context.Context, id int64) (*admindomain.Building, error) {
	return s.repo.FindByID(ctx, id)
}

func buildingFromCommand(id int64, cmd UpsertBuildingCommand) *admindomain.Building {
	return &admindomain.Building{
		ID:                  id,
		Title:               cmd.Title,
		TitleEn:             cmd.TitleEn,
		ThumbnailURL:        cmd.ThumbnailURL,
		YoutubeURL:          cmd.YoutubeURL,
		CompletionYears:     cmd.CompletionYears,
		ParentBuildingTypes: append([]string{}, cmd.ParentBuildingTypes...),
		BuildingTypes:       append([]string{}, cmd.BuildingTypes...),
		ParentStructures:    append([]string{}, cmd.ParentStructures...),
		Structures:          append([]string{}, cmd.Structures...),
		Prefecture:          cmd.Prefecture,
		Areas:               cmd.Areas,
		Location:            cmd.Location,
		Lat:                 cmd.Lat,
		Lng:                 cmd.Lng,
		Architects:          append([]admindomain.ArchitectRef{}, cmd.Architects...),
	}
}
