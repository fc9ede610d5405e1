package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// fakeRepo は BuildingRepository のテストダブル。err が設定されていれば全操作が失敗する。
type fakeRepo struct {
	name  string
	items []domain.Building
	err   error
	calls int
}

func (r *fakeRepo) Find(_ context.Context, paging Paging) (BuildingPage, error) {
	r.calls++
	if r.err != nil {
		return BuildingPage{}, r.err
	}
	return BuildingPage{Items: r.items, Total: len(r.items)}, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*domain.Building, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "building", ID: id}
}

func (r *fakeRepo) Search(_ context.Context, filter SearchFilters, _ Paging) (BuildingPage, error) {
	r.calls++
	if r.err != nil {
		return BuildingPage{}, r.err
	}
	matched := make([]domain.Building, 0)
	for _, b := range r.items {
		if filter.Matches(b) {
			matched = append(matched, b)
		}
	}
	return BuildingPage{Items: matched, Total: len(matched)}, nil
}

func (r *fakeRepo) Nearby(_ context.Context, _, _, _ float64) ([]domain.Building, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

type fakeHistory struct {
	queries []string
	err     error
}

func (h *fakeHistory) Suggest(context.Context, string, int) ([]string, error) { return nil, nil }
func (h *fakeHistory) Popular(context.Context, int) ([]string, error)        { return nil, nil }
func (h *fakeHistory) RecordSearch(_ context.Context, query string) error {
	if h.err != nil {
		return h.err
	}
	h.queries = append(h.queries, query)
	return nil
}

func newTestService(remote, local *fakeRepo, toggle *AvailabilityToggle, history SuggestionRepository) BuildingQueryService {
	var remoteRepo BuildingRepository
	if remote != nil {
		remoteRepo = remote
	}
	return NewBuildingQueryService(remoteRepo, local, toggle, history, nil)
}

func availableToggle(t *testing.T) *AvailabilityToggle {
	t.Helper()
	toggle := NewAvailabilityToggle(true, &stubChecker{})
	require.Equal(t, StateAvailable, toggle.Resolve(context.Background()))
	return toggle
}

func TestListUsesRemoteWhenAvailable(t *testing.T) {
	remote := &fakeRepo{name: "remote", items: []domain.Building{{ID: 1, Title: "光の教会"}}}
	local := &fakeRepo{name: "local", items: []domain.Building{{ID: 99, Title: "ローカル"}}}
	svc := newTestService(remote, local, availableToggle(t), nil)

	page, err := svc.List(context.Background(), Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Items[0].ID)
	assert.Equal(t, 0, local.calls)
}

func TestListFallsBackWhenUnavailable(t *testing.T) {
	remote := &fakeRepo{name: "remote"}
	local := &fakeRepo{name: "local", items: []domain.Building{{ID: 99, Title: "ローカル"}}}
	toggle := NewAvailabilityToggle(false, nil)
	svc := newTestService(remote, local, toggle, nil)

	page, err := svc.List(context.Background(), Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(99), page.Items[0].ID)
	assert.Equal(t, 0, remote.calls, "unavailable 確定時はリモートを呼ばない")
}

func TestListFallsBackOnTransportError(t *testing.T) {
	remote := &fakeRepo{name: "remote", err: &TransportError{Status: 500, Message: "down"}}
	local := &fakeRepo{name: "local", items: []domain.Building{{ID: 99}}}
	svc := newTestService(remote, local, availableToggle(t), nil)

	page, err := svc.List(context.Background(), Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(99), page.Items[0].ID)
	assert.Equal(t, 1, remote.calls, "セッションは available のまま、呼び出し単位で退避する")
}

func TestDetailNotFoundDoesNotFallBack(t *testing.T) {
	remote := &fakeRepo{name: "remote", items: []domain.Building{{ID: 1}}}
	local := &fakeRepo{name: "local", items: []domain.Building{{ID: 2}}}
	svc := newTestService(remote, local, availableToggle(t), nil)

	_, err := svc.Detail(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "NotFound はローカルへ退避せずそのまま返す")
	assert.Equal(t, 0, local.calls)
}

func TestSearchRecordsHistoryOnRemoteSuccess(t *testing.T) {
	remote := &fakeRepo{name: "remote", items: []domain.Building{{ID: 1, Title: "光の教会"}}}
	local := &fakeRepo{name: "local"}
	history := &fakeHistory{}
	svc := newTestService(remote, local, availableToggle(t), history)

	_, err := svc.Search(context.Background(), SearchFilters{Query: " 光の教会 "}, Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"光の教会"}, history.queries, "トリム済みクエリが記録される")
}

func TestSearchDoesNotRecordEmptyQuery(t *testing.T) {
	remote := &fakeRepo{name: "remote", items: []domain.Building{{ID: 1}}}
	history := &fakeHistory{}
	svc := newTestService(remote, &fakeRepo{}, availableToggle(t), history)

	_, err := svc.Search(context.Background(), SearchFilters{}, Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, history.queries)
}

func TestSearchFallbackDoesNotRecordHistory(t *testing.T) {
	remote := &fakeRepo{name: "remote", err: &TransportError{Status: 500, Message: "down"}}
	local := &fakeRepo{name: "local"}
	history := &fakeHistory{}
	svc := newTestService(remote, local, availableToggle(t), history)

	_, err := svc.Search(context.Background(), SearchFilters{Query: "安藤忠雄"}, Paging{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, history.queries, "ローカル退避した検索は履歴に残さない")
}

func TestStaleGuardDropsSupersededTokens(t *testing.T) {
	var guard staleGuard

	first := guard.Issue()
	second := guard.Issue()

	assert.False(t, guard.Apply(first), "追い越されたトークンは落とす")
	assert.True(t, guard.Apply(second))
	assert.False(t, guard.Apply(second), "同一トークンの再適用も落とす")
}

func TestLikeCommandServiceValidatesKind(t *testing.T) {
	svc := NewLikeCommandService(nil)

	_, err := svc.IncrementLikes(context.Background(), LikeKind("unknown"), 1)
	require.Error(t, err)
	assert.False(t, IsTransport(err), "未知の種別は入力エラー")
}

func TestLikeCommandServiceWithoutRepoReturnsServiceUnavailable(t *testing.T) {
	svc := NewLikeCommandService(nil)

	_, err := svc.IncrementLikes(context.Background(), LikeKindBuilding, 1)
	require.Error(t, err)

	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, 503, transport.Status)
}

func TestPagingOffset(t *testing.T) {
	assert.Equal(t, 0, Paging{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Paging{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Paging{Page: 0, Limit: 20}.Offset(), "0 以下のページは 1 扱い")
	assert.Equal(t, 0, Paging{Page: -1, Limit: 20}.Offset())
}
