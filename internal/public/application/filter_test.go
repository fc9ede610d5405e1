package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

func fixtureBuilding() domain.Building {
	return domain.Building{
		ID:              1,
		Title:           "光の教会",
		TitleEn:         "Church of the Light",
		ThumbnailURL:    "https://example.com/thumb.jpg",
		YoutubeURL:      "",
		CompletionYears: 1989,
		Prefectures:     "大阪府",
		Location:        "大阪府茨木市北春日丘",
		Lat:             34.8346,
		Lng:             135.5545,
	}
}

func TestSearchFiltersMatchesQuery(t *testing.T) {
	b := fixtureBuilding()

	assert.True(t, SearchFilters{Query: "光の教会"}.Matches(b))
	assert.True(t, SearchFilters{Query: "church of the light"}.Matches(b), "英語タイトルは大文字小文字を無視する")
	assert.True(t, SearchFilters{Query: "茨木市"}.Matches(b), "所在地も検索対象")
	assert.False(t, SearchFilters{Query: "水の教会"}.Matches(b))
}

func TestSearchFiltersMatchesPrefectures(t *testing.T) {
	b := fixtureBuilding()

	assert.True(t, SearchFilters{Prefectures: []string{"東京都", "大阪府"}}.Matches(b), "複数指定は OR")
	assert.False(t, SearchFilters{Prefectures: []string{"東京都"}}.Matches(b))
}

func TestSearchFiltersMatchesMedia(t *testing.T) {
	b := fixtureBuilding()

	assert.True(t, SearchFilters{HasPhotos: true}.Matches(b))
	assert.False(t, SearchFilters{HasVideos: true}.Matches(b), "動画 URL が空なら除外")

	b.ThumbnailURL = ""
	assert.False(t, SearchFilters{HasPhotos: true}.Matches(b))
	assert.True(t, SearchFilters{HasPhotos: false}.Matches(b), "false は制約を課さない")
}

func TestSearchFiltersMatchesBoundingBox(t *testing.T) {
	b := fixtureBuilding()

	near := SearchFilters{
		CurrentLocation: &GeoPoint{Lat: 34.83, Lng: 135.55},
		RadiusKm:        5,
	}
	assert.True(t, near.Matches(b))

	far := SearchFilters{
		CurrentLocation: &GeoPoint{Lat: 35.68, Lng: 139.76},
		RadiusKm:        5,
	}
	assert.False(t, far.Matches(b), "東京中心 5km に大阪の建築は入らない")

	noRadius := SearchFilters{CurrentLocation: &GeoPoint{Lat: 35.68, Lng: 139.76}}
	assert.True(t, noRadius.Matches(b), "半径なしの位置指定は制約を課さない")
}

func TestSearchFiltersEmptyMatchesEverything(t *testing.T) {
	b := fixtureBuilding()

	assert.True(t, SearchFilters{}.Matches(b))

	// 予約フィールドは現状コンパイラが参照しないため、指定しても絞り込まれない。
	reserved := SearchFilters{
		Architects:    []string{"安藤忠雄"},
		BuildingTypes: []string{"教会"},
		Areas:         []string{"茨木市"},
	}
	assert.True(t, reserved.Matches(b))
}

func TestSearchFiltersNormalized(t *testing.T) {
	filter := SearchFilters{
		Query:       "  安藤忠雄  ",
		Prefectures: []string{" 大阪府 ", "", "東京都"},
	}

	normalized := filter.Normalized()
	assert.Equal(t, "安藤忠雄", normalized.Query)
	assert.Equal(t, []string{"大阪府", "東京都"}, normalized.Prefectures)

	// 元のフィルタは変更しない。
	assert.Equal(t, "  安藤忠雄  ", filter.Query)
}

func TestBoundingBoxContains(t *testing.T) {
	box := NewBoundingBox(35.0, 139.0, 10)

	require.InDelta(t, 34.91, box.MinLat, 0.0001)
	require.InDelta(t, 35.09, box.MaxLat, 0.0001)
	require.InDelta(t, 138.89, box.MinLng, 0.0001)
	require.InDelta(t, 139.11, box.MaxLng, 0.0001)

	assert.True(t, box.Contains(35.0, 139.0))
	assert.True(t, box.Contains(34.91, 138.89), "境界は含む")
	assert.False(t, box.Contains(35.1, 139.0))
}

func TestSortBuildings(t *testing.T) {
	items := []domain.Building{
		{ID: 3, CompletionYears: 2004},
		{ID: 1, CompletionYears: 1989},
		{ID: 2, CompletionYears: 1989},
	}

	SortBuildings(items)

	assert.Equal(t, []int64{1, 2, 3}, []int64{items[0].ID, items[1].ID, items[2].ID}, "竣工年昇順、同値は ID 昇順")
}
