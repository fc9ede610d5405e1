package application

import (
	"context"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// BuildingRepository abstracts read access to buildings.
// BuildingRepository は Public コンテキストで建築物を読み取るためのポート。
// リモートゲートウェイとローカルフォールバックの双方がこれを実装する。
type BuildingRepository interface {
	Find(ctx context.Context, paging Paging) (BuildingPage, error)
	FindByID(ctx context.Context, id int64) (*domain.Building, error)
	Search(ctx context.Context, filter SearchFilters, paging Paging) (BuildingPage, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Building, error)
}

// LikeRepository handles atomic like-count increments.
// LikeRepository はいいねカウンタの原子的加算を提供するポート。
type LikeRepository interface {
	IncrementLikes(ctx context.Context, kind LikeKind, id int64) (int, error)
}

// HealthChecker gates the availability toggle.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SuggestionRepository provides best-effort suggestion and search-log reads.
// SuggestionRepository は検索候補と検索ログ集計を提供するポート。
type SuggestionRepository interface {
	Suggest(ctx context.Context, keyword string, limit int) ([]string, error)
	Popular(ctx context.Context, limit int) ([]string, error)
	RecordSearch(ctx context.Context, query string) error
}

// LikeKind identifies the target collection of an increment.
type LikeKind string

const (
	LikeKindBuilding LikeKind = "building"
	LikeKindPhoto    LikeKind = "photo"
)

// Paging controls pagination. Page は 1 始まり。
type Paging struct {
	Page  int
	Limit int
}

// Offset returns the zero-based offset `(page-1) * limit`.
func (p Paging) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit
}

// BuildingPage bundles one page of results with the exact matching total.
type BuildingPage struct {
	Items []domain.Building
	Total int
}

// BuildingQueryService describes read use-cases.
// BuildingQueryService は建築物に関する参照ユースケースを提供するリーダーモデル。
type BuildingQueryService interface {
	List(ctx context.Context, paging Paging) (BuildingPage, error)
	Detail(ctx context.Context, id int64) (*domain.Building, error)
	Search(ctx context.Context, filter SearchFilters, paging Paging) (BuildingPage, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Building, error)
}

// LikeCommandService handles the only mutating use-case.
type LikeCommandService interface {
	IncrementLikes(ctx context.Context, kind LikeKind, id int64) (int, error)
}

// SuggestionService describes best-effort suggestion use-cases.
// 失敗はエラーとして伝播せず、ドキュメント化されたフォールバック値で吸収する。
type SuggestionService interface {
	Suggest(ctx context.Context, keyword string) []string
	Popular(ctx context.Context) []string
}
