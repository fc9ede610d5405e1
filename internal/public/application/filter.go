package application

import (
	"sort"
	"strings"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// 半径 1km あたりの緯度・経度のおおよその度数。中緯度帯向けの矩形近似であり、
// 真の測地円ではない。呼び出し側は厳密な半径セマンティクスを仮定してはならない。
const (
	latDegreesPerKm = 0.009
	lngDegreesPerKm = 0.011
)

// GeoPoint は位置検索の基準点。
type GeoPoint struct {
	Lat float64
	Lng float64
}

// SearchFilters expresses search criteria for buildings.
// 各条件は AND で結合され、未設定のフィールドは制約を課さない。
// Architects / BuildingTypes / Areas は予約フィールドで、現状コンパイラは参照しない。
type SearchFilters struct {
	Query           string
	Prefectures     []string
	HasPhotos       bool
	HasVideos       bool
	CurrentLocation *GeoPoint
	RadiusKm        float64
	Architects      []string
	BuildingTypes   []string
	Areas           []string
}

// Normalized はクエリのトリムと都道府県リストの空要素除去を行ったコピーを返す。
func (f SearchFilters) Normalized() SearchFilters {
	f.Query = strings.TrimSpace(f.Query)

	prefectures := make([]string, 0, len(f.Prefectures))
	for _, p := range f.Prefectures {
		if p = strings.TrimSpace(p); p != "" {
			prefectures = append(prefectures, p)
		}
	}
	f.Prefectures = prefectures
	return f
}

// Box は位置条件が有効な場合に矩形近似の境界を返す。
func (f SearchFilters) Box() (BoundingBox, bool) {
	if f.CurrentLocation == nil || f.RadiusKm <= 0 {
		return BoundingBox{}, false
	}
	return NewBoundingBox(f.CurrentLocation.Lat, f.CurrentLocation.Lng, f.RadiusKm), true
}

// Matches はローカルデータ向けの述語。リモートクエリ句（buildSearchFilter）と
// 同じ集合を残すことが両実装の契約になっている。
func (f SearchFilters) Matches(b domain.Building) bool {
	query := strings.TrimSpace(f.Query)
	if query != "" {
		if !containsFold(b.Title, query) && !containsFold(b.TitleEn, query) && !containsFold(b.Location, query) {
			return false
		}
	}

	if len(f.Prefectures) > 0 && !containsString(f.Prefectures, b.Prefectures) {
		return false
	}

	if f.HasPhotos && b.ThumbnailURL == "" {
		return false
	}
	if f.HasVideos && b.YoutubeURL == "" {
		return false
	}

	if box, ok := f.Box(); ok && !box.Contains(b.Lat, b.Lng) {
		return false
	}

	return true
}

// BoundingBox は円形半径の代わりに用いる矩形近似。
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox は基準点と半径 (km) から近似矩形を組み立てる。
func NewBoundingBox(lat, lng, radiusKm float64) BoundingBox {
	return BoundingBox{
		MinLat: lat - radiusKm*latDegreesPerKm,
		MaxLat: lat + radiusKm*latDegreesPerKm,
		MinLng: lng - radiusKm*lngDegreesPerKm,
		MaxLng: lng + radiusKm*lngDegreesPerKm,
	}
}

// Contains は座標が矩形内（境界含む）かを判定する。
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// SortBuildings は竣工年の昇順、同値は ID 昇順で並べ替える。
// 一覧・検索の既定順序としてリモート側のソート指定と揃えている。
func SortBuildings(items []domain.Building) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CompletionYears != items[j].CompletionYears {
			return items[i].CompletionYears < items[j].CompletionYears
		}
		return items[i].ID < items[j].ID
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
