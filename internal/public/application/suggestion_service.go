package application

import (
	"context"
	"log"
	"strings"
)

// maxSuggestions は候補の上限件数。
const maxSuggestions = 10

// popularFallback はバックエンド集計が使えない場合に返す固定の人気キーワード。
// 集計結果ではない静的リストであることに注意。
var popularFallback = []string{"安藤忠雄", "隈研吾", "丹下健三", "伊東豊雄"}

// popularLimit は人気キーワードの取得件数。フォールバックと同じ 4 件に揃えている。
const popularLimit = 4

// suggestionService は検索候補と人気キーワードをベストエフォートで返す。
// バックエンドエラーは呼び出し側へ伝播させず、空列または固定リストへ退避する。
type suggestionService struct {
	repo   SuggestionRepository
	logger *log.Logger
}

// NewSuggestionService creates the best-effort suggestion service.
// repo はリモート無効時に nil 可。
func NewSuggestionService(repo SuggestionRepository, logger *log.Logger) SuggestionService {
	return &suggestionService{repo: repo, logger: logger}
}

func (s *suggestionService) Suggest(ctx context.Context, keyword string) []string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || s.repo == nil {
		return []string{}
	}

	candidates, err := s.repo.Suggest(ctx, keyword, maxSuggestions)
	if err != nil {
		s.logf("検索候補の取得に失敗しました: %v", err)
		return []string{}
	}

	return dedupe(candidates, maxSuggestions)
}

func (s *suggestionService) Popular(ctx context.Context) []string {
	if s.repo == nil {
		return append([]string{}, popularFallback...)
	}

	items, err := s.repo.Popular(ctx, popularLimit)
	if err != nil {
		s.logf("人気キーワードの集計に失敗したため固定リストを返します: %v", err)
		return append([]string{}, popularFallback...)
	}
	if items == nil {
		items = []string{}
	}
	return items
}

func (s *suggestionService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// dedupe は順序を保ったまま重複を除き、上限件数で切り詰める。
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, limit)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
		if len(result) >= limit {
			break
		}
	}
	return result
}
