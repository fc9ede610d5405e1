package application

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// buildingQueryService は可用性トグルに従ってリモート/ローカルを選ぶクエリサービス。
// どちらのソースでも呼び出し側へ返る形（BuildingPage / Building）は変わらない。
type buildingQueryService struct {
	remote  BuildingRepository
	local   BuildingRepository
	toggle  *AvailabilityToggle
	history SuggestionRepository
	guard   staleGuard
	logger  *log.Logger
}

// NewBuildingQueryService creates the source-switching query service.
// history は検索ログ蓄積用で nil 可。remote が nil の場合はトグル側で
// unavailable に確定している前提だが、念のため常にローカルへ落とす。
func NewBuildingQueryService(remote, local BuildingRepository, toggle *AvailabilityToggle, history SuggestionRepository, logger *log.Logger) BuildingQueryService {
	return &buildingQueryService{
		remote:  remote,
		local:   local,
		toggle:  toggle,
		history: history,
		logger:  logger,
	}
}

func (s *buildingQueryService) List(ctx context.Context, paging Paging) (BuildingPage, error) {
	if s.remote == nil || useFallback(s.toggle.Resolve(ctx), nil) {
		return s.local.Find(ctx, paging)
	}

	page, err := s.remote.Find(ctx, paging)
	if useFallback(StateAvailable, err) {
		s.logf("リモート一覧取得に失敗したためローカルデータへ切り替えます: %v", err)
		return s.local.Find(ctx, paging)
	}
	return page, err
}

func (s *buildingQueryService) Detail(ctx context.Context, id int64) (*domain.Building, error) {
	if s.remote == nil || useFallback(s.toggle.Resolve(ctx), nil) {
		return s.local.FindByID(ctx, id)
	}

	building, err := s.remote.FindByID(ctx, id)
	if useFallback(StateAvailable, err) {
		s.logf("リモート詳細取得に失敗したためローカルデータへ切り替えます: id=%d err=%v", id, err)
		return s.local.FindByID(ctx, id)
	}
	return building, err
}

func (s *buildingQueryService) Search(ctx context.Context, filter SearchFilters, paging Paging) (BuildingPage, error) {
	token := s.guard.Issue()
	filter = filter.Normalized()

	if s.remote == nil || useFallback(s.toggle.Resolve(ctx), nil) {
		return s.local.Search(ctx, filter, paging)
	}

	page, err := s.remote.Search(ctx, filter, paging)
	if useFallback(StateAvailable, err) {
		s.logf("リモート検索に失敗したためローカルデータへ切り替えます: %v", err)
		return s.local.Search(ctx, filter, paging)
	}
	if err != nil {
		return page, err
	}

	s.recordSearch(ctx, filter.Query, token)
	return page, nil
}

func (s *buildingQueryService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Building, error) {
	if s.remote == nil || useFallback(s.toggle.Resolve(ctx), nil) {
		return s.local.Nearby(ctx, lat, lng, radiusKm)
	}

	items, err := s.remote.Nearby(ctx, lat, lng, radiusKm)
	if useFallback(StateAvailable, err) {
		s.logf("リモート近傍検索に失敗したためローカルデータへ切り替えます: %v", err)
		return s.local.Nearby(ctx, lat, lng, radiusKm)
	}
	return items, err
}

// recordSearch は検索履歴をベストエフォートで蓄積する。追い越された応答の
// 書き込みは staleGuard が落とすので、後勝ちで履歴が巻き戻ることはない。
func (s *buildingQueryService) recordSearch(ctx context.Context, query string, token uint64) {
	if s.history == nil || query == "" {
		return
	}
	if !s.guard.Apply(token) {
		return
	}
	if err := s.history.RecordSearch(ctx, query); err != nil {
		s.logf("検索ログの記録に失敗しました: %v", err)
	}
}

func (s *buildingQueryService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// staleGuard は追い越された検索応答の副作用を落とすための単調増加トークン。
// 発行済みの最新トークンを持つ応答だけが Apply に成功する。
type staleGuard struct {
	issued  atomic.Uint64
	applied atomic.Uint64
}

func (g *staleGuard) Issue() uint64 {
	return g.issued.Add(1)
}

// Apply は token が最新発行かつ未追い越しの場合のみ true を返す。
func (g *staleGuard) Apply(token uint64) bool {
	if token != g.issued.Load() {
		return false
	}
	for {
		current := g.applied.Load()
		if token <= current {
			return false
		}
		if g.applied.CompareAndSwap(current, token) {
			return true
		}
	}
}

// likeCommandService はいいね加算をリモートゲートウェイへ委譲する。
// 加算はミューテーションなのでローカルフォールバックは行わず、失敗は呼び出し側へ返す。
type likeCommandService struct {
	repo LikeRepository
}

// NewLikeCommandService creates the like command service.
func NewLikeCommandService(repo LikeRepository) LikeCommandService {
	return &likeCommandService{repo: repo}
}

func (s *likeCommandService) IncrementLikes(ctx context.Context, kind LikeKind, id int64) (int, error) {
	switch kind {
	case LikeKindBuilding, LikeKindPhoto:
	default:
		return 0, fmt.Errorf("未知のいいね対象です: %q", kind)
	}

	if s.repo == nil {
		return 0, &TransportError{Status: 503, Message: "リモートデータ接続が無効のため、いいねを記録できません"}
	}
	return s.repo.IncrementLikes(ctx, kind, id)
}
