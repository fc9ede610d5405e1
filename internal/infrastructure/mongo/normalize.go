package mongo

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kenchikumap/kenchiku-map-services/api/internal/public/domain"
)

// Normalizer は生ドキュメントを正規化済み Building へ変換する。
// 全フィールドを既定値へ落とし込む全域変換であり、決して失敗しない。
// completionYears の欠損補完が現在年に依存するため、テスト用に時計を注入できる。
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer with an injectable clock.
// now が nil の場合は time.Now を使う。
func NewNormalizer(now func() time.Time) Normalizer {
	if now == nil {
		now = time.Now
	}
	return Normalizer{now: now}
}

// Building はドキュメントを正規化済みビューモデルへ変換する。
// 年・座標の解釈失敗は黙って既定値（現在年・0.0）に落ちる。座標の 0,0 と
// 「位置不明」は呼び出し側から区別できない。
func (n Normalizer) Building(doc BuildingDocument) domain.Building {
	now := n.now()

	year, ok := parseYear(doc.CompletionYears)
	if !ok {
		year = now.Year()
	}
	lat, _ := parseCoord(doc.Lat)
	lng, _ := parseCoord(doc.Lng)

	titleEn := strings.TrimSpace(doc.TitleEn)
	if titleEn == "" {
		titleEn = doc.Title
	}

	createdAt := now
	if doc.CreatedAt != nil {
		createdAt = *doc.CreatedAt
	}
	updatedAt := now
	if doc.UpdatedAt != nil {
		updatedAt = *doc.UpdatedAt
	}

	return domain.Building{
		ID:                  doc.ID,
		UID:                 doc.UID,
		Title:               doc.Title,
		TitleEn:             titleEn,
		ThumbnailURL:        doc.ThumbnailURL,
		YoutubeURL:          doc.YoutubeURL,
		CompletionYears:     year,
		ParentBuildingTypes: splitList(doc.ParentBuildingTypes),
		BuildingTypes:       splitList(doc.BuildingTypes),
		ParentStructures:    splitList(doc.ParentStructures),
		Structures:          splitList(doc.Structures),
		Prefectures:         doc.Prefectures,
		Areas:               doc.Areas,
		Location:            doc.Location,
		Lat:                 lat,
		Lng:                 lng,
		Architects:          normalizeArchitects(doc.Architects),
		Photos:              normalizePhotos(doc.Photos, now),
		Likes:               doc.Likes,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

// normalizeArchitects はリレーション配列を OrderIndex 順に平坦化する。
// architectEn が空の場合は architectJa を引き継ぐ。Websites は遅延読み込み前提で空。
func normalizeArchitects(relations []BuildingArchitectDocument) []domain.Architect {
	ordered := append([]BuildingArchitectDocument(nil), relations...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	architects := make([]domain.Architect, 0, len(ordered))
	for _, rel := range ordered {
		if rel.Architect == nil {
			continue
		}
		nameEn := strings.TrimSpace(rel.Architect.NameEn)
		if nameEn == "" {
			nameEn = rel.Architect.NameJa
		}
		architects = append(architects, domain.Architect{
			ID:       rel.Architect.ID,
			NameJa:   rel.Architect.NameJa,
			NameEn:   nameEn,
			Websites: []domain.Website{},
		})
	}
	return architects
}

// normalizePhotos は写真リレーションを変換する。リレーション自体が無い取得経路では
// 空スライスになり、「写真なし」と「未取得」は区別できない。
func normalizePhotos(photos []PhotoDocument, now time.Time) []domain.Photo {
	result := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		createdAt := now
		if p.CreatedAt != nil {
			createdAt = *p.CreatedAt
		}
		result = append(result, domain.Photo{
			ID:           p.ID,
			URL:          p.URL,
			ThumbnailURL: p.ThumbnailURL,
			Likes:        p.Likes,
			CreatedAt:    createdAt,
		})
	}
	return result
}

// splitList はカンマ区切り文字列をトリム済み・空要素なしの列へ分解する。
// 空文字列は空スライスになる。
func splitList(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// parseYear は西暦の整数解釈を試みる。失敗時の補完は呼び出し側の責務。
func parseYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

// parseCoord は座標の float 解釈を試みる。失敗時は 0 を返す。
func parseCoord(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// DocumentFromBuilding は正規化済み Building をドキュメントスキーマへ書き戻す。
// シーダーと管理コンテキストの書き込みで利用する。Geohash / Geo は呼び出し側が設定する。
func DocumentFromBuilding(b domain.Building) BuildingDocument {
	createdAt := b.CreatedAt
	updatedAt := b.UpdatedAt

	relations := make([]BuildingArchitectDocument, 0, len(b.Architects))
	for i, a := range b.Architects {
		relations = append(relations, BuildingArchitectDocument{
			ArchitectID: a.ID,
			OrderIndex:  i,
			Architect: &ArchitectDocument{
				ID:     a.ID,
				NameJa: a.NameJa,
				NameEn: a.NameEn,
			},
		})
	}

	photos := make([]PhotoDocument, 0, len(b.Photos))
	for _, p := range b.Photos {
		photoCreatedAt := p.CreatedAt
		photos = append(photos, PhotoDocument{
			ID:           p.ID,
			URL:          p.URL,
			ThumbnailURL: p.ThumbnailURL,
			Likes:        p.Likes,
			CreatedAt:    &photoCreatedAt,
		})
	}

	return BuildingDocument{
		ID:                  b.ID,
		UID:                 b.UID,
		Title:               b.Title,
		TitleEn:             b.TitleEn,
		ThumbnailURL:        b.ThumbnailURL,
		YoutubeURL:          b.YoutubeURL,
		CompletionYears:     strconv.Itoa(b.CompletionYears),
		ParentBuildingTypes: strings.Join(b.ParentBuildingTypes, ","),
		BuildingTypes:       strings.Join(b.BuildingTypes, ","),
		ParentStructures:    strings.Join(b.ParentStructures, ","),
		Structures:          strings.Join(b.Structures, ","),
		Prefectures:         b.Prefectures,
		Areas:               b.Areas,
		Location:            b.Location,
		Lat:                 strconv.FormatFloat(b.Lat, 'f', -1, 64),
		Lng:                 strconv.FormatFloat(b.Lng, 'f', -1, 64),
		Likes:               b.Likes,
		Architects:          relations,
		Photos:              photos,
		CreatedAt:           &createdAt,
		UpdatedAt:           &updatedAt,
	}
}
