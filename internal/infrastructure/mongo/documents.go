package mongo

import "time"

// BuildingDocument はリモートストア上の建築物スキーマを Go 構造体として表現したもの。
// 元データ由来の揺らぎ（カンマ区切り文字列・文字列のままの年/座標・欠損フィールド）を
// そのまま保持し、既定値への落とし込みは normalize.go に集約する。
type BuildingDocument struct {
	ID                  int64                       `bson:"_id"`
	UID                 string                      `bson:"uid,omitempty"`
	Title               string                      `bson:"title,omitempty"`
	TitleEn             string                      `bson:"titleEn,omitempty"`
	ThumbnailURL        string                      `bson:"thumbnailUrl,omitempty"`
	YoutubeURL          string                      `bson:"youtubeUrl,omitempty"`
	CompletionYears     string                      `bson:"completionYears,omitempty"`
	ParentBuildingTypes string                      `bson:"parentBuildingTypes,omitempty"`
	BuildingTypes       string                      `bson:"buildingTypes,omitempty"`
	ParentStructures    string                      `bson:"parentStructures,omitempty"`
	Structures          string                      `bson:"structures,omitempty"`
	Prefectures         string                      `bson:"prefectures,omitempty"`
	Areas               string                      `bson:"areas,omitempty"`
	Location            string                      `bson:"location,omitempty"`
	Lat                 string                      `bson:"lat,omitempty"`
	Lng                 string                      `bson:"lng,omitempty"`
	Likes               int                         `bson:"likes,omitempty"`
	Geohash             string                      `bson:"geohash,omitempty"`
	Geo                 *GeoPointDocument           `bson:"geo,omitempty"`
	Architects          []BuildingArchitectDocument `bson:"architects,omitempty"`
	Photos              []PhotoDocument             `bson:"photos,omitempty"`
	CreatedAt           *time.Time                  `bson:"createdAt,omitempty"`
	UpdatedAt           *time.Time                  `bson:"updatedAt,omitempty"`
}

// BuildingArchitectDocument は建築物と建築家を結ぶ中間リレーション 1 件分。
// Architect はリレーション展開を要求した取得経路でのみ埋まる。
type BuildingArchitectDocument struct {
	ArchitectID int64              `bson:"architectId"`
	OrderIndex  int                `bson:"orderIndex,omitempty"`
	Architect   *ArchitectDocument `bson:"architect,omitempty"`
}

// ArchitectDocument は建築家スタブの埋め込みスキーマ。
type ArchitectDocument struct {
	ID     int64  `bson:"id"`
	NameJa string `bson:"architectJa,omitempty"`
	NameEn string `bson:"architectEn,omitempty"`
}

// PhotoDocument は建築物写真 1 枚分のメタデータを格納する埋め込みドキュメント。
type PhotoDocument struct {
	ID           int64      `bson:"id"`
	URL          string     `bson:"url,omitempty"`
	ThumbnailURL string     `bson:"thumbnailUrl,omitempty"`
	Likes        int        `bson:"likes,omitempty"`
	CreatedAt    *time.Time `bson:"createdAt,omitempty"`
}

// GeoPointDocument は GeoJSON Point。座標順は [lng, lat]。
// 地理検索（$geoNear / $geoWithin）はこのフィールドに対して行う。
type GeoPointDocument struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// SearchLogDocument は検索キーワードの蓄積ログ。人気キーワード集計の元データ。
type SearchLogDocument struct {
	Query     string    `bson:"query"`
	CreatedAt time.Time `bson:"createdAt"`
}
