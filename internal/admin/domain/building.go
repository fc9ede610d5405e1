package domain

import "time"

// Building aggregates data required for admin operations.
// Building は管理操作（登録・更新）で扱う建築物集約。公開側の正規化済み
// ビューモデルと異なり、検証済み値オブジェクトを保持する。
type Building struct {
	ID                  int64
	UID                 string
	Title               string
	TitleEn             string
	ThumbnailURL        URL
	YoutubeURL          URL
	CompletionYears     Year
	ParentBuildingTypes []string
	BuildingTypes       []string
	ParentStructures    []string
	Structures          []string
	Prefecture          Prefecture
	Areas               string
	Location            string
	Lat                 float64
	Lng                 float64
	Architects          []ArchitectRef
	Likes               int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ArchitectRef は建築物に紐づける建築家への参照。表示順は OrderIndex で保持する。
type ArchitectRef struct {
	ID         int64
	NameJa     string
	NameEn     string
	OrderIndex int
}
