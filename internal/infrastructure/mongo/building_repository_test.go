package mongo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
)

func TestBuildSearchFilterEmpty(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{})
	assert.Equal(t, bson.M{}, mongoFilter, "未設定フィルタは制約を課さない")
}

func TestBuildSearchFilterQueryClause(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{Query: " 光の教会 "})

	or, ok := mongoFilter["$or"].(bson.A)
	require.True(t, ok, "単一条件は $and を介さず直接マージされる")
	require.Len(t, or, 3)

	pattern := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, "光の教会", pattern.Pattern, "トリム済みクエリ")
	assert.Equal(t, "i", pattern.Options)
	assert.Contains(t, or[1].(bson.M), "titleEn")
	assert.Contains(t, or[2].(bson.M), "location")
}

func TestBuildSearchFilterEscapesRegexMetacharacters(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{Query: "a+b(c)"})

	or := mongoFilter["$or"].(bson.A)
	pattern := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, regexp.QuoteMeta("a+b(c)"), pattern.Pattern)
}

func TestBuildSearchFilterPrefecturesClause(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{
		Prefectures: []string{"東京都", "大阪府"},
	})

	assert.Equal(t, bson.M{"$in": []string{"東京都", "大阪府"}}, mongoFilter["prefectures"])
}

func TestBuildSearchFilterMediaClauses(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{HasPhotos: true})
	assert.Equal(t, bson.M{"$exists": true, "$nin": bson.A{"", nil}}, mongoFilter["thumbnailUrl"])

	mongoFilter = buildSearchFilter(application.SearchFilters{HasPhotos: true, HasVideos: true})
	and, ok := mongoFilter["$and"].([]bson.M)
	require.True(t, ok, "複数条件は $and に入る")
	require.Len(t, and, 2)
	assert.Contains(t, and[0], "thumbnailUrl")
	assert.Contains(t, and[1], "youtubeUrl")
}

func TestBuildSearchFilterGeoClause(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{
		CurrentLocation: &application.GeoPoint{Lat: 35.0, Lng: 139.0},
		RadiusKm:        10,
	})

	geo, ok := mongoFilter["geo"].(bson.M)
	require.True(t, ok)
	geometry := geo["$geoWithin"].(bson.M)["$geometry"].(bson.M)
	assert.Equal(t, "Polygon", geometry["type"])

	ring := geometry["coordinates"].([][][]float64)[0]
	require.Len(t, ring, 5, "GeoJSON ポリゴンは始点で閉じる")
	assert.Equal(t, ring[0], ring[4])

	box := application.NewBoundingBox(35.0, 139.0, 10)
	assert.Equal(t, []float64{box.MinLng, box.MinLat}, ring[0])
	assert.Equal(t, []float64{box.MaxLng, box.MaxLat}, ring[2])
}

func TestBuildSearchFilterIgnoresReservedFields(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{
		Architects:    []string{"安藤忠雄"},
		BuildingTypes: []string{"教会"},
		Areas:         []string{"茨木市"},
	})

	assert.Equal(t, bson.M{}, mongoFilter)
}

func TestBuildSearchFilterCombined(t *testing.T) {
	mongoFilter := buildSearchFilter(application.SearchFilters{
		Query:       "教会",
		Prefectures: []string{"大阪府"},
		HasPhotos:   true,
	})

	// prefectures はトップレベル、残り 2 条件は $and。
	assert.Contains(t, mongoFilter, "prefectures")
	and, ok := mongoFilter["$and"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, and, 2)
}
