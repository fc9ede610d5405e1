package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/infrastructure/localdata"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNormalizerDefaults(t *testing.T) {
	norm := NewNormalizer(fixedClock)

	b := norm.Building(BuildingDocument{
		ID:    7,
		Title: "名称不明の建築",
	})

	assert.Equal(t, 2024, b.CompletionYears, "解釈不能な竣工年は現在年へ補完")
	assert.Equal(t, 0.0, b.Lat)
	assert.Equal(t, 0.0, b.Lng)
	assert.Equal(t, "名称不明の建築", b.TitleEn, "英語名が空なら日本語名を引き継ぐ")
	assert.Equal(t, fixedClock(), b.CreatedAt)
	assert.Equal(t, fixedClock(), b.UpdatedAt)
	assert.NotNil(t, b.ParentBuildingTypes)
	assert.Empty(t, b.ParentBuildingTypes)
	assert.NotNil(t, b.Architects)
	assert.NotNil(t, b.Photos)
}

func TestNormalizerParsesStringColumns(t *testing.T) {
	norm := NewNormalizer(fixedClock)

	b := norm.Building(BuildingDocument{
		ID:              1,
		Title:           "光の教会",
		CompletionYears: "1989",
		Lat:             "34.8346",
		Lng:             "135.5545",
		BuildingTypes:   "教会, 礼拝堂 ,",
	})

	assert.Equal(t, 1989, b.CompletionYears)
	assert.InDelta(t, 34.8346, b.Lat, 1e-9)
	assert.InDelta(t, 135.5545, b.Lng, 1e-9)
	assert.Equal(t, []string{"教会", "礼拝堂"}, b.BuildingTypes)
}

func TestNormalizerBrokenValuesFallSilently(t *testing.T) {
	norm := NewNormalizer(fixedClock)

	b := norm.Building(BuildingDocument{
		ID:              1,
		Title:           "壊れたデータ",
		CompletionYears: "江戸時代",
		Lat:             "北緯35度",
		Lng:             "",
	})

	assert.Equal(t, 2024, b.CompletionYears)
	assert.Equal(t, 0.0, b.Lat)
	assert.Equal(t, 0.0, b.Lng)
}

func TestNormalizerArchitectOrderAndFallback(t *testing.T) {
	norm := NewNormalizer(fixedClock)

	b := norm.Building(BuildingDocument{
		ID:    1,
		Title: "金沢21世紀美術館",
		Architects: []BuildingArchitectDocument{
			{ArchitectID: 6, OrderIndex: 1, Architect: &ArchitectDocument{ID: 6, NameJa: "西沢立衛"}},
			{ArchitectID: 5, OrderIndex: 0, Architect: &ArchitectDocument{ID: 5, NameJa: "妹島和世", NameEn: "Kazuyo Sejima"}},
			{ArchitectID: 9, OrderIndex: 2, Architect: nil},
		},
	})

	require.Len(t, b.Architects, 2, "リレーション欠損はスキップ")
	assert.Equal(t, "妹島和世", b.Architects[0].NameJa, "OrderIndex 順")
	assert.Equal(t, "Kazuyo Sejima", b.Architects[0].NameEn)
	assert.Equal(t, "西沢立衛", b.Architects[1].NameEn, "英語名が空なら日本語名を引き継ぐ")
}

func TestNormalizeRoundTripIsStable(t *testing.T) {
	// 正規化済み Building を書き戻して再度正規化しても値が変わらないこと。
	norm := NewNormalizer(fixedClock)

	for _, original := range localdata.Buildings() {
		doc := DocumentFromBuilding(original)
		again := norm.Building(doc)
		assert.Equal(t, original, again, "id=%d", original.ID)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, splitList(""))
	assert.Equal(t, []string{"RC造"}, splitList("RC造"))
	assert.Equal(t, []string{"鉄骨造", "木造"}, splitList(" 鉄骨造 , 木造 , "))
}

func TestParseYear(t *testing.T) {
	year, ok := parseYear("1989")
	assert.True(t, ok)
	assert.Equal(t, 1989, year)

	_, ok = parseYear("")
	assert.False(t, ok)
	_, ok = parseYear("平成元年")
	assert.False(t, ok)
}

func TestParseCoord(t *testing.T) {
	value, ok := parseCoord("135.5545")
	assert.True(t, ok)
	assert.InDelta(t, 135.5545, value, 1e-9)

	_, ok = parseCoord("")
	assert.False(t, ok)
	_, ok = parseCoord("東経")
	assert.False(t, ok)
}
