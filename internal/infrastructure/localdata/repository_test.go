package localdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/application"
)

func TestFindReturnsSortedPages(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	page, err := repo.Find(ctx, application.Paging{Page: 1, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	assert.Equal(t, len(Buildings()), page.Total, "総件数はページに依存しない")

	for i := 1; i < len(page.Items); i++ {
		prev, cur := page.Items[i-1], page.Items[i]
		less := prev.CompletionYears < cur.CompletionYears ||
			(prev.CompletionYears == cur.CompletionYears && prev.ID < cur.ID)
		assert.True(t, less, "竣工年昇順・同値は ID 昇順")
	}

	second, err := repo.Find(ctx, application.Paging{Page: 2, Limit: 5})
	require.NoError(t, err)
	require.NotEmpty(t, second.Items)
	assert.NotEqual(t, page.Items[0].ID, second.Items[0].ID)
}

func TestFindBeyondLastPageReturnsEmpty(t *testing.T) {
	repo := NewRepository()

	page, err := repo.Find(context.Background(), application.Paging{Page: 100, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, len(Buildings()), page.Total)
}

func TestFindByID(t *testing.T) {
	repo := NewRepository()

	building, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "光の教会", building.Title)

	_, err = repo.FindByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, application.IsNotFound(err))
}

func TestSearchByQueryAndPrefecture(t *testing.T) {
	repo := NewRepository()

	page, err := repo.Search(context.Background(), application.SearchFilters{
		Query:       "教会",
		Prefectures: []string{"大阪府"},
	}, application.Paging{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "光の教会", page.Items[0].Title)
	assert.Equal(t, 1, page.Total)
}

func TestSearchHasVideosExcludesEntriesWithoutVideo(t *testing.T) {
	repo := NewRepository()

	page, err := repo.Search(context.Background(), application.SearchFilters{HasVideos: true}, application.Paging{Page: 1, Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, page.Items)
	for _, b := range page.Items {
		assert.NotEmpty(t, b.YoutubeURL)
	}
}

func TestSearchTotalCountsAllMatches(t *testing.T) {
	repo := NewRepository()

	page, err := repo.Search(context.Background(), application.SearchFilters{
		Prefectures: []string{"東京都"},
	}, application.Paging{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Greater(t, page.Total, 2, "総件数は絞り込み後の全件")
}

func TestNearbyReturnsOnlyBuildingsInBox(t *testing.T) {
	repo := NewRepository()

	// 東京駅周辺 10km: 都内の建築は入り、大阪・北海道は入らない。
	items, err := repo.Nearby(context.Background(), 35.6812, 139.7671, 10)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	ids := make(map[int64]struct{}, len(items))
	for _, b := range items {
		ids[b.ID] = struct{}{}
	}
	assert.Contains(t, ids, int64(12), "東京タワー")
	assert.Contains(t, ids, int64(5), "中銀カプセルタワービル")
	assert.NotContains(t, ids, int64(1), "光の教会（大阪）")
	assert.NotContains(t, ids, int64(2), "水の教会（北海道）")
}

func TestNearbyLargeRadiusSkipsGeohashPrefilter(t *testing.T) {
	repo := NewRepository()

	// 50km は前段フィルタの上限を超えるため矩形判定のみで評価される。
	items, err := repo.Nearby(context.Background(), 35.6812, 139.7671, 50)
	require.NoError(t, err)

	ids := make(map[int64]struct{}, len(items))
	for _, b := range items {
		ids[b.ID] = struct{}{}
	}
	assert.Contains(t, ids, int64(10), "東京都庁舎")
	assert.NotContains(t, ids, int64(7), "金沢21世紀美術館")
}

func TestBuildingsReturnsFreshCopy(t *testing.T) {
	first := Buildings()
	first[0].Title = "書き換え"

	second := Buildings()
	assert.Equal(t, "光の教会", second[0].Title, "呼び出しごとに独立したスライスを返す")
}
