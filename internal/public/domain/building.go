package domain

import "time"

// Building は公開カタログで扱う建築物の正規化済みビューモデル。
// Building はデータソース（リモート/ローカル）を問わず常に同じ形で呼び出し側へ返る。
// 多値フィールドは常にスライスであり nil にはならない。TitleEn は Title が
// 空でない限り空にならない。
type Building struct {
	ID                  int64
	UID                 string
	Title               string
	TitleEn             string
	ThumbnailURL        string
	YoutubeURL          string
	CompletionYears     int
	ParentBuildingTypes []string
	BuildingTypes       []string
	ParentStructures    []string
	Structures          []string
	Prefectures         string
	Areas               string
	Location            string
	Lat                 float64
	Lng                 float64
	Architects          []Architect
	Photos              []Photo
	Likes               int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Architect は建築物に紐づく建築家のスタブ。NameEn は空のとき NameJa を引き継ぐ。
// Websites は遅延読み込み前提で既定では空スライス。
type Architect struct {
	ID       int64
	NameJa   string
	NameEn   string
	Websites []Website
}

// Website は建築家の関連サイト 1 件分。
type Website struct {
	ID    int64
	URL   string
	Title string
}

// Photo は建築物写真のメタデータ。リレーションを要求しない取得経路では
// Building.Photos は空のままになる。
type Photo struct {
	ID           int64
	URL          string
	ThumbnailURL string
	Likes        int
	CreatedAt    time.Time
}
