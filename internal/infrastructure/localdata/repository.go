package localdata

import (
	"context"

	"github.com/mmcloughlin/geohash"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// 近傍検索の前段フィルタに使うジオハッシュ精度。精度 4 のセルは
// おおよそ緯度 0.176 度 × 経度 0.352 度で、半径 15km の矩形より広い。
const (
	nearbyHashPrecision = uint(4)
	nearbyHashMaxRadius = 15.0
	nearbyFallbackLimit = 100
)

var _ application.BuildingRepository = (*Repository)(nil)

// Repository はリモートデータソースが使えないときに提供する読み取り専用の
// フォールバック実装。検索はリモート句と同じ述語（SearchFilters.Matches）で評価する。
type Repository struct {
	buildings []domain.Building
}

// NewRepository は埋め込みデータセットを読み込んだリポジトリを返す。
func NewRepository() *Repository {
	items := Buildings()
	application.SortBuildings(items)
	return &Repository{buildings: items}
}

// Find は既定順序（竣工年昇順・同値は ID 昇順)のページを返す。
func (r *Repository) Find(_ context.Context, paging application.Paging) (application.BuildingPage, error) {
	return pageOf(r.buildings, paging), nil
}

// FindByID は ID 一致の 1 件を返す。見つからない場合は NotFoundError。
func (r *Repository) FindByID(_ context.Context, id int64) (*domain.Building, error) {
	for i := range r.buildings {
		if r.buildings[i].ID == id {
			b := r.buildings[i]
			return &b, nil
		}
	}
	return nil, &application.NotFoundError{Resource: "building", ID: id}
}

// Search はフィルタ述語で絞り込んだページを返す。総件数は絞り込み後の全件数。
func (r *Repository) Search(_ context.Context, filter application.SearchFilters, paging application.Paging) (application.BuildingPage, error) {
	filter = filter.Normalized()

	matched := make([]domain.Building, 0, len(r.buildings))
	for _, b := range r.buildings {
		if filter.Matches(b) {
			matched = append(matched, b)
		}
	}
	return pageOf(matched, paging), nil
}

// Nearby は矩形近似で基準点周辺の建築物を返す。件数上限はリモート側の
// フォールバック検索と同じ 100 件。半径が小さい場合はジオハッシュの
// 近傍セルで候補を先に間引く。
func (r *Repository) Nearby(_ context.Context, lat, lng, radiusKm float64) ([]domain.Building, error) {
	box := application.NewBoundingBox(lat, lng, radiusKm)

	var cells map[string]struct{}
	if radiusKm > 0 && radiusKm <= nearbyHashMaxRadius {
		center := geohash.EncodeWithPrecision(lat, lng, nearbyHashPrecision)
		cells = make(map[string]struct{}, 9)
		cells[center] = struct{}{}
		for _, neighbor := range geohash.Neighbors(center) {
			cells[neighbor] = struct{}{}
		}
	}

	result := make([]domain.Building, 0, nearbyFallbackLimit)
	for _, b := range r.buildings {
		if cells != nil {
			cell := geohash.EncodeWithPrecision(b.Lat, b.Lng, nearbyHashPrecision)
			if _, ok := cells[cell]; !ok {
				continue
			}
		}
		if !box.Contains(b.Lat, b.Lng) {
			continue
		}
		result = append(result, b)
		if len(result) == nearbyFallbackLimit {
			break
		}
	}
	return result, nil
}

func pageOf(items []domain.Building, paging application.Paging) application.BuildingPage {
	total := len(items)

	offset := paging.Offset()
	if offset > total {
		offset = total
	}
	end := total
	if paging.Limit > 0 && offset+paging.Limit < end {
		end = offset + paging.Limit
	}

	page := make([]domain.Building, end-offset)
	copy(page, items[offset:end])
	return application.BuildingPage{Items: page, Total: total}
}
