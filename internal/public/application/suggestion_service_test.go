package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSuggestionRepo struct {
	suggestions []string
	popular     []string
	err         error
}

func (r *fakeSuggestionRepo) Suggest(context.Context, string, int) ([]string, error) {
	return r.suggestions, r.err
}

func (r *fakeSuggestionRepo) Popular(context.Context, int) ([]string, error) {
	return r.popular, r.err
}

func (r *fakeSuggestionRepo) RecordSearch(context.Context, string) error {
	return r.err
}

func TestSuggestEmptyKeywordReturnsEmpty(t *testing.T) {
	svc := NewSuggestionService(&fakeSuggestionRepo{suggestions: []string{"安藤忠雄"}}, nil)

	assert.Equal(t, []string{}, svc.Suggest(context.Background(), ""))
	assert.Equal(t, []string{}, svc.Suggest(context.Background(), "   "))
}

func TestSuggestWithoutRepoReturnsEmpty(t *testing.T) {
	svc := NewSuggestionService(nil, nil)
	assert.Equal(t, []string{}, svc.Suggest(context.Background(), "安藤"))
}

func TestSuggestErrorReturnsEmptyNotError(t *testing.T) {
	repo := &fakeSuggestionRepo{err: errors.New("aggregation failed")}
	svc := NewSuggestionService(repo, nil)

	assert.Equal(t, []string{}, svc.Suggest(context.Background(), "安藤"))
}

func TestSuggestDedupesAndCaps(t *testing.T) {
	repo := &fakeSuggestionRepo{suggestions: []string{
		"安藤忠雄", "安藤忠雄", " 安藤忠雄建築研究所 ", "",
		"a", "b", "c", "d", "e", "f", "g", "h", "i",
	}}
	svc := NewSuggestionService(repo, nil)

	items := svc.Suggest(context.Background(), "安藤")
	assert.Len(t, items, 10, "上限 10 件")
	assert.Equal(t, "安藤忠雄", items[0])
	assert.Equal(t, "安藤忠雄建築研究所", items[1], "トリムと順序保持")
}

func TestPopularWithoutRepoReturnsFixedList(t *testing.T) {
	svc := NewSuggestionService(nil, nil)

	items := svc.Popular(context.Background())
	assert.Equal(t, []string{"安藤忠雄", "隈研吾", "丹下健三", "伊東豊雄"}, items)

	// 返却値を書き換えても内部の固定リストは汚れない。
	items[0] = "changed"
	assert.Equal(t, "安藤忠雄", svc.Popular(context.Background())[0])
}

func TestPopularErrorReturnsFixedList(t *testing.T) {
	repo := &fakeSuggestionRepo{err: errors.New("aggregation failed")}
	svc := NewSuggestionService(repo, nil)

	assert.Equal(t, []string{"安藤忠雄", "隈研吾", "丹下健三", "伊東豊雄"}, svc.Popular(context.Background()))
}

func TestPopularPassesThroughBackendResult(t *testing.T) {
	repo := &fakeSuggestionRepo{popular: []string{"丹下健三", "隈研吾"}}
	svc := NewSuggestionService(repo, nil)

	assert.Equal(t, []string{"丹下健三", "隈研吾"}, svc.Popular(context.Background()))
}

func TestPopularNilResultBecomesEmptySlice(t *testing.T) {
	repo := &fakeSuggestionRepo{popular: nil}
	svc := NewSuggestionService(repo, nil)

	items := svc.Popular(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
